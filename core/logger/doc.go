// Package logger provides structured logging built on uber-go/zap.
//
// It supports json output for production and a colored console encoding for
// local development, switched via configuration.
//
// # Configuration
//
// The Level field selects between zap's production and development presets;
// the Format field selects the encoding.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
package logger
