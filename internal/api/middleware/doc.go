// Package middleware contains the HTTP middleware shared by all routes.
package middleware
