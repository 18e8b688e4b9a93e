package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "shopsense://catalog",
		Name:        "Product Catalog",
		Description: "All recommendable products grouped by interest category",
		MimeType:    "text/plain",
	},
	{
		URI:         "shopsense://summary",
		Name:        "Population Summary",
		Description: "Aggregate statistics for the stored customer population",
		MimeType:    "text/plain",
	},
	{
		URI:         "shopsense://customers",
		Name:        "Customers",
		Description: "Stored customers with their core profile fields",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}
