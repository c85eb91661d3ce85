// Package api handles incoming HTTP requests, request validation and
// response formatting. It acts as an adapter between the frontend and the
// explanation pipeline, translating HTTP concerns into explain.Service calls
// and envelopes back into JSON.
package api
