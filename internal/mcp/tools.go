package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "recommend_products",
		Description: "Generate product recommendations for a stored customer. Returns up to 5 scored products with reasons and a churn risk estimate.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Customer name (case-insensitive exact match)",
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"collaborative", "contextual", "hybrid"},
					"description": "Recommendation strategy. Defaults to the configured strategy (hybrid).",
				},
			},
			"required": []string{"name"},
		},
	},
	{
		Name:        "recommend_new_customer",
		Description: "Generate recommendations for a customer who is not in the store yet, from an inline profile. Uses the contextual strategy by default.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Customer name",
				},
				"age": map[string]interface{}{
					"type":        "integer",
					"description": "Customer age in years",
				},
				"gender": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"Male", "Female"},
					"description": "Customer gender",
				},
				"interests": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Interest categories, e.g. Tech, Gaming, Fashion",
				},
				"purchase_history": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Previously purchased products",
				},
				"sentiment_score": map[string]interface{}{
					"type":        "number",
					"description": "Sentiment score in [-1, 1]",
				},
				"engagement_score": map[string]interface{}{
					"type":        "number",
					"description": "Engagement score in [0, 100]",
				},
				"social_media_activity": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"Low", "Medium", "High"},
					"description": "Social media activity level",
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"collaborative", "contextual", "hybrid"},
					"description": "Recommendation strategy (default: contextual)",
				},
			},
			"required": []string{"name"},
		},
	},
	{
		Name:        "list_customers",
		Description: "List stored customers with an optional name filter. Returns customers in insertion order.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Filter by customer name (case-insensitive partial match)",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 20)",
				},
			},
		},
	},
	{
		Name:        "customer_insights",
		Description: "Get a customer's profile metrics: sentiment, engagement, social activity, and churn risk on a common 0-2 scale.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Customer name (case-insensitive exact match)",
				},
			},
			"required": []string{"name"},
		},
	},
	{
		Name:        "get_stats",
		Description: "Get aggregate statistics about the stored customer population including sentiment and engagement averages.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
