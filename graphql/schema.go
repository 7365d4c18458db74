package graphql

import (
	"strings"
	"sync"

	_ "embed"
)

//go:embed schema.graphqls
var schemaBase string

var (
	schemaExtensions []string
	schemaMu         sync.Mutex
)

// RegisterSchemaExtension appends schema to the base schema. Call from init() in custom packages.
func RegisterSchemaExtension(schema string) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	schemaExtensions = append(schemaExtensions, strings.TrimSpace(schema))
}

// Schema returns base schema + registered extensions.
func Schema() string {
	schemaMu.Lock()
	ext := schemaExtensions
	schemaMu.Unlock()
	if len(ext) == 0 {
		return schemaBase
	}
	return schemaBase + "\n\n" + strings.Join(ext, "\n\n")
}

// --- Schema arg types (used by resolvers for graphql-go method matching) ---

type PlantsArgs struct {
	Category *string
}

type PlantArgs struct {
	ID string
}

type AddToCartArgs struct {
	ID    string
	Name  string
	Price *string
}

type RemoveFromCartArgs struct {
	Index int32
}

// ExtensionArgs for _extension(name, args). Args is a JSON object string.
type ExtensionArgs struct {
	Name string
	Args *string
}
