// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, and response compression are handled in this package before
// requests are delegated to the service layer. Errors coming back from the
// services are translated to status codes in one place (errors_mapper.go)
// so that decryption failures never leak their cause to clients.
package http
