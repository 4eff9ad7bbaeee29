// Package api exposes the engine's shardservice.Service over HTTP. It is
// the one external surface the rest of the engine has: every route
// resolves a request to a shardservice call and renders the result (or
// error) as JSON.
//
// Route table:
//
//	POST   /types/nodes/{name}             register (or fetch) a node type id
//	POST   /types/relationships/{name}     register (or fetch) a relationship type id
//	GET    /types/nodes                    list registered node type names
//	GET    /types/relationships            list registered relationship type names
//	GET    /types/nodes/{name}              node type id, live count, and capacity
//	GET    /types/relationships/{name}      relationship type id, live count, and capacity
//	GET    /nodes/{type}/{key}             resolve a node's external id
//	POST   /nodes/{type}/{key}             create a node
//	DELETE /nodes/id/{id}                  remove a node by external id
//	GET    /nodes/id/{id}/key              the key a node id was created under
//	GET    /nodes/id/{id}/outgoing         outgoing relationship ids
//	GET    /nodes/id/{id}/incoming         incoming relationship ids
//	POST   /relationships/{type}           create a relationship
//	GET    /relationships/id/{id}          fetch a relationship's endpoints
//	DELETE /relationships/id/{id}          remove a relationship
//	GET    /nodes/id/{id}/properties/{name}          get a node property
//	PUT    /nodes/id/{id}/properties/{name}          set a node property
//	DELETE /nodes/id/{id}/properties/{name}          delete a node property
//	PUT    /nodes/id/{id}/properties                 bulk-set node properties
//	GET    /relationships/id/{id}/properties/{name}  get a relationship property
//	PUT    /relationships/id/{id}/properties/{name}  set a relationship property
//	DELETE /relationships/id/{id}/properties/{name}  delete a relationship property
//	PUT    /relationships/id/{id}/properties         bulk-set relationship properties
//	GET    /health                         liveness probe
//
// Errors are reported as a JSON {"code": "...", "message": "..."} body with
// a matching HTTP status, one envelope shape for every failure.
package api
