package core

// Fallback registers a catch-all route for Subcommand or Component
const Fallback = "*"

type routeKind int

const (
	routeCommand routeKind = iota
	routeComponent
)

// route is a subcommand ("" for the bare command) or a component action
type route struct {
	kind routeKind
	name string
}

// Router groups the handlers of one domain. The domain is both the slash
// command name and the custom ID prefix.
type Router struct {
	domain     string
	routes     map[route]Handler
	middleware []Middleware
	ids        *CustomIDBuilder
	pipeline   *Pipeline
}

func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:   domain,
		routes:   make(map[route]Handler),
		ids:      NewCustomIDBuilder(domain),
		pipeline: pipeline,
	}
}

// Use adds middleware for routes registered after the call
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

func (r *Router) add(key route, handler Handler) *Router {
	r.routes[key] = MiddlewareChain(r.middleware...)(handler)
	return r
}

// Command handles the domain command without a subcommand
func (r *Router) Command(handler Handler) *Router {
	return r.add(route{kind: routeCommand}, handler)
}

func (r *Router) Subcommand(sub string, handler Handler) *Router {
	return r.add(route{kind: routeCommand, name: sub}, handler)
}

func (r *Router) SubcommandFunc(sub string, fn HandlerFunc) *Router {
	return r.Subcommand(sub, fn)
}

func (r *Router) Component(action string, handler Handler) *Router {
	return r.add(route{kind: routeComponent, name: action}, handler)
}

func (r *Router) ComponentFunc(action string, fn HandlerFunc) *Router {
	return r.Component(action, fn)
}

// Build snapshots the routes registered so far into one Handler
func (r *Router) Build() Handler {
	routes := make(map[route]Handler, len(r.routes))
	for key, handler := range r.routes {
		routes[key] = handler
	}
	return &domainHandler{domain: r.domain, routes: routes}
}

// Register adds the built router to its pipeline, if any
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// CustomIDs encodes component IDs that route back to this router
func (r *Router) CustomIDs() *CustomIDBuilder {
	return r.ids
}

type domainHandler struct {
	domain string
	routes map[route]Handler
}

func (h *domainHandler) CanHandle(ctx *InteractionContext) bool {
	return h.lookup(ctx) != nil
}

func (h *domainHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler := h.lookup(ctx)
	if handler == nil {
		return nil, NewNotFoundError("Handler for " + ctx.Route())
	}
	return handler.Handle(ctx)
}

func (h *domainHandler) lookup(ctx *InteractionContext) Handler {
	key, ok := h.routeOf(ctx)
	if !ok {
		return nil
	}
	if handler, ok := h.routes[key]; ok {
		return handler
	}
	if key.name != "" {
		return h.routes[route{kind: key.kind, name: Fallback}]
	}
	return nil
}

func (h *domainHandler) routeOf(ctx *InteractionContext) (route, bool) {
	switch {
	case ctx.IsCommand():
		if ctx.CommandName() != h.domain {
			return route{}, false
		}
		return route{kind: routeCommand, name: ctx.Subcommand()}, true
	case ctx.IsComponent():
		id, err := ParseCustomID(ctx.ComponentID())
		if err != nil || id.Domain != h.domain {
			return route{}, false
		}
		return route{kind: routeComponent, name: id.Action}, true
	}
	return route{}, false
}
