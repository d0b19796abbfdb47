package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           lingod API
// @version         0.1.0
// @description     HTTP API for offline bidirectional text translation.
//
// @contact.name   lingod maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
