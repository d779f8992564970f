package wren

// Handler is a user-supplied function mapping a parsed request and the
// initial response built for it to the response that is written back.
//
// The initial response is produced by the static responder for the request's
// method, so a handler that returns it unchanged yields the default
// behavior. Handlers are synchronous and must not block on I/O; outbound
// calls belong in the forwarder.
type Handler func(req *Request, res *Response) *Response
