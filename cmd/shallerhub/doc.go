// Package main provides the shallerhub CLI.
//
// Build it from the repo root:
//
//	go build -o shallerhub ./cmd/shallerhub
//
// Then:
//
//	shallerhub serve            # start the HTTP server
//	shallerhub migrate          # run migrations
//	shallerhub migrate:rollback
//	shallerhub migrate:status
//	shallerhub seed             # provision the default admin
//	shallerhub route:list       # list API routes
//	shallerhub queue:work       # run queue workers standalone
//	shallerhub schedule:run     # run the scheduler standalone
//
// serve runs the queue workers and scheduler in-process; queue:work and
// schedule:run exist for deployments that split them out.
package main
