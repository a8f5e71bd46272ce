package http

var RegisterFallback = registerFallback
