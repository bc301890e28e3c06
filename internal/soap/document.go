package soap

// Document is the structured form of one generated visit record.
type Document struct {
	SOAP SOAP        `json:"soap"`
	Plan NursingPlan `json:"plan"`
}

// SOAP holds the four sections of the visit record.
type SOAP struct {
	S string     `json:"s"`
	O string     `json:"o"`
	A Assessment `json:"a"`
	P CarePlan   `json:"p"`
}

// Assessment holds the sub-sections of A（アセスメント）.
type Assessment struct {
	SymptomProgress   string `json:"symptomProgress"`   // 症状推移
	RiskAssessment    string `json:"riskAssessment"`    // リスク評価（自殺・他害・服薬）
	BackgroundFactors string `json:"backgroundFactors"` // 背景要因
	NextObservation   string `json:"nextObservation"`   // 次回観察ポイント
}

// CarePlan holds the sub-sections of P（計画）.
type CarePlan struct {
	TodayCare    string `json:"todayCare"`    // 本日実施した援助
	FuturePolicy string `json:"futurePolicy"` // 次回以降の方針
}

// NursingPlan is the 看護計画書 draft that follows the SOAP record.
type NursingPlan struct {
	LongTermGoal  string `json:"longTermGoal"`  // 長期目標
	ShortTermGoal string `json:"shortTermGoal"` // 短期目標
	CarePolicy    string `json:"carePolicy"`    // 看護援助の方針
}

// IsEmpty reports whether no section was recognised.
func (d Document) IsEmpty() bool {
	return d == Document{}
}
