package soap

import (
	"regexp"
	"strings"
)

type section int

const (
	secNone section = iota
	secSkip
	secS
	secO
	secA
	secASymptom
	secARisk
	secABackground
	secAObservation
	secP
	secPToday
	secPFuture
	secPlan
	secLongTerm
	secShortTerm
	secPolicy
	sectionCount
)

// soapHeading matches "S（主観）:" and its variants once markdown markers
// have been stripped.
var soapHeading = regexp.MustCompile(`^([SOAP])\s*[（(]\s*(主観|客観|アセスメント|計画)\s*[）)]\s*[:：]?\s*(.*)$`)

var soapSections = map[string]section{
	"S主観":     secS,
	"O客観":     secO,
	"Aアセスメント": secA,
	"P計画":     secP,
}

type label struct {
	name    string
	section section
}

var (
	assessmentLabels = []label{
		{"症状推移", secASymptom},
		{"リスク評価", secARisk},
		{"背景要因", secABackground},
		{"次回観察ポイント", secAObservation},
	}
	careLabels = []label{
		{"本日実施した援助", secPToday},
		{"次回以降の方針", secPFuture},
	}
	planLabels = []label{
		{"長期目標", secLongTerm},
		{"短期目標", secShortTerm},
		{"看護援助の方針", secPolicy},
	}
)

// Parse splits generated text into a Document. Missing sections are left
// empty. When the text carries no SOAP label at all, all of it is returned
// as S so that nothing generated is lost. Parse never fails.
func Parse(text string) Document {
	var buf [sectionCount][]string
	current := secNone
	seenSOAP := false

	text = strings.ReplaceAll(text, "\r\n", "\n")
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.ReplaceAll(raw, "**", ""))
		heading := strings.TrimSpace(strings.TrimLeft(line, "#"))

		if next, rest, ok := classify(heading, current); ok {
			current = next
			if current >= secS && current <= secP && isSOAPHeading(heading) {
				seenSOAP = true
			}
			if rest != "" && current != secSkip {
				buf[current] = append(buf[current], rest)
			}
			continue
		}

		if current == secNone || current == secSkip {
			continue
		}
		buf[current] = append(buf[current], line)
	}

	get := func(s section) string {
		return strings.TrimSpace(strings.Join(buf[s], "\n"))
	}

	var doc Document
	if !seenSOAP {
		doc.SOAP.S = strings.TrimSpace(text)
	} else {
		doc.SOAP.S = get(secS)
	}
	doc.SOAP.O = get(secO)

	doc.SOAP.A = Assessment{
		SymptomProgress:   get(secASymptom),
		RiskAssessment:    get(secARisk),
		BackgroundFactors: get(secABackground),
		NextObservation:   get(secAObservation),
	}
	doc.SOAP.A.SymptomProgress = joinNonEmpty(get(secA), doc.SOAP.A.SymptomProgress)

	doc.SOAP.P = CarePlan{
		TodayCare:    get(secPToday),
		FuturePolicy: get(secPFuture),
	}
	doc.SOAP.P.TodayCare = joinNonEmpty(get(secP), doc.SOAP.P.TodayCare)

	doc.Plan = NursingPlan{
		LongTermGoal:  get(secLongTerm),
		ShortTermGoal: get(secShortTerm),
		CarePolicy:    get(secPolicy),
	}

	return doc
}

// classify reports whether heading starts a new section and, if so, which
// one and any text following the label on the same line.
func classify(heading string, current section) (section, string, bool) {
	if heading == "" {
		return 0, "", false
	}

	if heading == "---" {
		return secNone, "", true
	}

	if strings.HasPrefix(heading, "【訪問情報】") {
		return secSkip, "", true
	}

	if heading == "訪問看護計画書" || strings.HasPrefix(heading, "【看護計画書】") {
		return secPlan, "", true
	}

	if m := soapHeading.FindStringSubmatch(heading); m != nil {
		if s, ok := soapSections[m[1]+m[2]]; ok {
			return s, strings.TrimSpace(m[3]), true
		}
	}

	switch {
	case inAssessment(current):
		if s, rest, ok := matchAny(heading, assessmentLabels); ok {
			return s, rest, true
		}
	case inCare(current):
		if s, rest, ok := matchAny(heading, careLabels); ok {
			return s, rest, true
		}
	}

	if current != secS && current != secO {
		if s, rest, ok := matchAny(heading, planLabels); ok {
			return s, rest, true
		}
	}

	return 0, "", false
}

func isSOAPHeading(heading string) bool {
	return soapHeading.MatchString(heading)
}

func inAssessment(s section) bool {
	return s >= secA && s <= secAObservation
}

func inCare(s section) bool {
	return s >= secP && s <= secPFuture
}

func matchAny(heading string, labels []label) (section, string, bool) {
	for _, l := range labels {
		if rest, ok := matchLabel(heading, l.name); ok {
			return l.section, rest, true
		}
	}
	return 0, "", false
}

// matchLabel recognises "【name】", "【name（note）】", "name:", "name（note）："
// and a bare "name" line, returning the text after the label.
func matchLabel(heading, name string) (string, bool) {
	s := heading
	bracketed := strings.HasPrefix(s, "【")
	s = strings.TrimPrefix(s, "【")

	if !strings.HasPrefix(s, name) {
		return "", false
	}
	s = skipParenthetical(strings.TrimSpace(strings.TrimPrefix(s, name)))

	if bracketed {
		if !strings.HasPrefix(s, "】") {
			return "", false
		}
		return trimColon(strings.TrimPrefix(s, "】")), true
	}

	if s == "" {
		return "", true
	}
	if strings.HasPrefix(s, ":") || strings.HasPrefix(s, "：") {
		return trimColon(s), true
	}
	return "", false
}

func skipParenthetical(s string) string {
	for open, closing := range map[string]string{"（": "）", "(": ")"} {
		if strings.HasPrefix(s, open) {
			if i := strings.Index(s, closing); i >= 0 {
				return strings.TrimSpace(s[i+len(closing):])
			}
		}
	}
	return s
}

func trimColon(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ":")
	s = strings.TrimPrefix(s, "：")
	return strings.TrimSpace(s)
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n")
}
