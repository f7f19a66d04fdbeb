package handler

type ContextKey string

var (
	SessionCtxKey ContextKey = "session"
)
