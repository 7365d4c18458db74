package graphqlserver

import (
	"encoding/json"
	"net/http"

	gql "github.com/graph-gophers/graphql-go"

	"greenearth.GO/graphql"
	"greenearth.GO/graphql/resolvers"
	"greenearth.GO/service/storefront"
)

// Request is the standard GraphQL request body.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// NewSchema parses the storefront schema (plus registered extensions) against
// the storefront resolver.
func NewSchema(f *storefront.Storefront) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), resolvers.NewResolver(f), gql.UseFieldResolvers())
}

// Handler serves GraphQL over POST (JSON body) and GET (query, operationName
// and variables as URL parameters).
func Handler(schema *gql.Schema) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		switch r.Method {
		case http.MethodPost:
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid GraphQL request body", http.StatusBadRequest)
				return
			}
		case http.MethodGet:
			q := r.URL.Query()
			req.Query = q.Get("query")
			req.OperationName = q.Get("operationName")
			if v := q.Get("variables"); v != "" {
				if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
					http.Error(w, "invalid GraphQL variables", http.StatusBadRequest)
					return
				}
			}
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if req.Query == "" {
			http.Error(w, "missing GraphQL query", http.StatusBadRequest)
			return
		}

		resp := schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
		body, err := json.Marshal(resp)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	})
}
