// Package httperr folds failure lists into HTTP responses. It carries no
// framework coupling: any net/http-compatible handler can map a Result at
// the boundary to an RFC 9457 problem+json body, with one entry per error
// in list order.
package httperr
