// Package logger provides structured logging using zerolog.
//
// Loggers carry a service tag and may be scoped to a component:
//
//	log := logger.Get("httpclient")
//	log.Debug("exchange", logger.Fields("url", u, "status", 200))
//
// Configuration is loaded with the rest of the client config:
//
//	logging:
//	  level: "debug"
//	  format: "json"
package logger
