package ghsa

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/graphql-go/graphql/language/parser"
	"golang.org/x/xerrors"
	"k8s.io/utils/clock"
)

const (
	// PageSize is the number of advisories requested. No cursor is followed.
	PageSize = 10

	connectionField = "securityAdvisories"
	windowLayout    = "2006-01-02"
)

// PublishedSince returns the lower bound of the query window: yesterday's
// date in UTC at midnight, e.g. "2021-01-01T00:00:00".
func PublishedSince(c clock.PassiveClock) string {
	yesterday := c.Now().UTC().Add(-24 * time.Hour)
	return yesterday.Format(windowLayout) + "T00:00:00"
}

// BuildQuery renders the GraphQL document for advisories published since
// window. The selection set is derived from the json tags of
// SecurityAdvisories, so the query always matches what Parse expects.
func BuildQuery(window string) (string, error) {
	doc := fmt.Sprintf("query { %s(first: %d, publishedSince: %s) %s }",
		connectionField, PageSize, strconv.Quote(window), selectionSet(reflect.TypeOf(SecurityAdvisories{})))

	if _, err := parser.Parse(parser.ParseParams{Source: doc}); err != nil {
		return "", xerrors.Errorf("invalid query document: %w", err)
	}
	return doc, nil
}

func selectionSet(t reflect.Type) string {
	t = elem(t)

	var fields []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		if ft := elem(f.Type); ft.Kind() == reflect.Struct {
			name += " " + selectionSet(ft)
		}
		fields = append(fields, name)
	}
	return "{ " + strings.Join(fields, " ") + " }"
}

// elem unwraps pointers and slices down to the element type.
func elem(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	return t
}
