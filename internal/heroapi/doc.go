// Package heroapi serves the heroes REST API from memory for local
// development and tests.
//
// HTTP API
//
//	GET /api/heroes[?name=term]
//	    Return all heroes, or those whose name contains term (case-insensitive).
//	    GET /api/heroes/?name=term is accepted as well.
//
//	GET /api/heroes/{id}
//	    Return one hero, or 404.
//
//	POST /api/heroes {"name": "..."}
//	    Create a hero. The id is max(id)+1, or 11 for an empty store. A body
//	    carrying an id that is already taken is rejected with 409.
//
//	PUT /api/heroes {"id": N, "name": "..."}
//	    Replace hero N. 204 on success, 404 when N is unknown.
//
//	DELETE /api/heroes/{id}
//	    Remove hero N. 204 on success, 404 when N is unknown.
//
//	GET /healthz, GET /metrics
//	    Liveness and Prometheus metrics.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - Each request gets an X-Request-ID (the caller's, or a fresh uuid).
package heroapi
