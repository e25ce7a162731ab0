package service

import (
	"strings"

	"railway-planner/internal/models"
)

// UniqueByStationPair keeps the first route for each (start, end) station name pair.
func UniqueByStationPair(routes []models.MatchedRoute) []models.MatchedRoute {
	type key struct{ start, end string }
	seen := make(map[key]struct{}, len(routes))
	unique := make([]models.MatchedRoute, 0, len(routes))
	for _, r := range routes {
		k := key{r.Start.Name, r.End.Name}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// UniqueByRouteName keeps the first route for each route name.
func UniqueByRouteName(routes []models.MatchedRoute) []models.MatchedRoute {
	seen := make(map[string]struct{}, len(routes))
	unique := make([]models.MatchedRoute, 0, len(routes))
	for _, r := range routes {
		if _, ok := seen[r.RouteName]; ok {
			continue
		}
		seen[r.RouteName] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

func operatorMatches(operator, filter string) bool {
	return strings.Contains(strings.ToLower(operator), strings.ToLower(filter))
}

// FilterRoutesByOperator keeps routes whose operator contains filter, ignoring case.
// An empty filter keeps everything.
func FilterRoutesByOperator(routes []models.MatchedRoute, filter string) []models.MatchedRoute {
	if filter == "" {
		return routes
	}
	kept := make([]models.MatchedRoute, 0, len(routes))
	for _, r := range routes {
		if operatorMatches(r.Operator, filter) {
			kept = append(kept, r)
		}
	}
	return kept
}

// transferMatches reports whether either leg of a transfer matches filter.
// An empty filter matches everything.
func transferMatches(a, b models.RouteCandidate, filter string) bool {
	if filter == "" {
		return true
	}
	return operatorMatches(a.Operator, filter) || operatorMatches(b.Operator, filter)
}
