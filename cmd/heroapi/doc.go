// Package main runs the in-memory heroes API used by the heroes CLI during
// development and tests. See package heroapi for the HTTP contract.
//
// Configuration comes from the environment (and an optional .env file):
//
//	HEROAPI_PORT          listen port (default 8080)
//	HEROAPI_CORS_ORIGINS  comma-separated browser origins (default any)
//	HEROAPI_ACCESS_LOG    log every request (default false)
//	HEROAPI_SEED_FILE     JSON array of heroes to start with
//	HEROES_ENV            "development" for text logs and gin debug mode
//	HEROES_LOG_LEVEL      logrus level override
//
// All state is held in memory and lost on process exit.
package main
