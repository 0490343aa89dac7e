// internal/app/store/crud/query.go
package crud

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter is implemented by each entity's typed list filter.
type Filter interface {
	Query() bson.M
}

// Eq sets q[field] = value when value is non-blank.
func Eq(q bson.M, field, value string) {
	if v := strings.TrimSpace(value); v != "" {
		q[field] = v
	}
}

// SearchQuery builds the query Search runs for term. A blank term matches
// everything within SearchScope.
func (r *Repo[T, PT]) SearchQuery(term string) bson.M {
	q := bson.M{}
	for k, v := range r.cfg.SearchScope {
		q[k] = v
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return q
	}

	rx := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(r.cfg.SearchFields)+len(r.cfg.ArraySearchFields))
	for _, f := range r.cfg.SearchFields {
		or = append(or, bson.M{f: rx})
	}
	for _, f := range r.cfg.ArraySearchFields {
		or = append(or, bson.M{f: bson.M{"$in": bson.A{rx}}})
	}
	if len(or) > 0 {
		q["$or"] = or
	}
	return q
}
