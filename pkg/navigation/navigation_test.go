package navigation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Kalai-nithi-guhan/next-deploy/pkg/navigation"
)

func TestLinks_ExactlyOneActivePerRoute(t *testing.T) {
	routes := navigation.DefaultRoutes()

	for _, route := range routes {
		t.Run(route.Path, func(t *testing.T) {
			links := navigation.Links(routes, route.Path)
			if len(links) != len(routes) {
				t.Fatalf("expected %d links, got %d", len(routes), len(links))
			}
			active := 0
			for _, link := range links {
				if link.Active {
					active++
					if link.Path != route.Path {
						t.Fatalf("active link %q does not match %q", link.Path, route.Path)
					}
				}
			}
			if active != 1 {
				t.Fatalf("expected one active link, got %d", active)
			}
		})
	}
}

func TestLinks_PreservesOrderAndLabels(t *testing.T) {
	got := navigation.Links(navigation.DefaultRoutes(), "/contact")
	want := []navigation.Link{
		{Path: "/", Label: "Home"},
		{Path: "/about", Label: "About"},
		{Path: "/contact", Label: "Contact", Active: true},
		{Path: "/analyzer", Label: "Analyzer 🔍"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestLinks_UnknownPathMarksNothing(t *testing.T) {
	for _, current := range []string{"/missing", "/about/", "/analyzer/extra", ""} {
		for _, link := range navigation.Links(navigation.DefaultRoutes(), current) {
			if link.Active {
				t.Fatalf("%q: unexpected active link %q", current, link.Path)
			}
		}
	}
}

func TestFind(t *testing.T) {
	route, ok := navigation.Find(navigation.DefaultRoutes(), "/analyzer")
	if !ok {
		t.Fatalf("expected analyzer route")
	}
	if route.Label != "Analyzer 🔍" {
		t.Fatalf("unexpected label %q", route.Label)
	}
	if _, ok := navigation.Find(navigation.DefaultRoutes(), "/pricing"); ok {
		t.Fatalf("expected no route for /pricing")
	}
}
