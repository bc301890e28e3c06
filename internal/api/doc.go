// Package api handles incoming HTTP requests, request validation and
// response formatting. It acts as an adapter between HTTP clients and the
// note service, translating domain error kinds to status codes and
// guaranteeing that only safe messages reach the caller.
package api
