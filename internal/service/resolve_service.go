//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"

	"nifresolver/pkg/logger"
	"nifresolver/pkg/resolver"
)

type ResolveService interface {
	// Resolve validates loc and returns the redirect decision for it.
	Resolve(ctx context.Context, loc resolver.Location) (resolver.Decision, error)
}

type resolveService struct{}

func NewResolveService() ResolveService {
	return &resolveService{}
}

func (s *resolveService) Resolve(ctx context.Context, loc resolver.Location) (resolver.Decision, error) {
	if !strings.HasPrefix(loc.Path, "/") {
		return resolver.Decision{}, fmt.Errorf("%w: path must start with /", ErrInvalid)
	}
	if offSite(loc.Path) {
		return resolver.Decision{}, fmt.Errorf("%w: path must not name another host", ErrInvalid)
	}

	d := resolver.Resolve(loc)
	if d.Rule == resolver.RuleFragment && offSite(d.Target) {
		return resolver.Decision{}, fmt.Errorf("%w: fragment must not name another host", ErrInvalid)
	}
	switch d.Rule {
	case resolver.RuleFragment:
		logger.Info(d.Message(), "module", "service", "action", "resolve", "resource", "location", "result", "redirect", "path", loc.Path, "fragment", loc.Fragment)
	case resolver.RuleOntology:
		logger.Info(d.Message(), "module", "service", "action", "resolve", "resource", "location", "result", "redirect", "path", loc.Path, "target", d.Target)
	default:
		logger.Info(d.Message(), "module", "service", "action", "resolve", "resource", "location", "result", "skip", "path", loc.Path)
	}
	return d, nil
}

// offSite reports whether a browser would read p as a protocol-relative URL.
func offSite(p string) bool {
	return strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\")
}
