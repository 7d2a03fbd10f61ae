package schema

// registry maps model names to their declared shapes. The entries mirror the
// wire structs in pkg/model; Validate consults them for raw documents, before
// the JSON is bound to a Go type.
var registry = map[string]Descriptor{
	"ChatRequest": {
		Name: "ChatRequest",
		Properties: map[string]Property{
			"question":                 {Type: TypeString},
			"chatHistoryInteractionId": {Type: TypeString},
			"limitCreate":              {Type: TypeInteger},
			"limitSearch":              {Type: TypeInteger},
			"relevantScoreThreshold":   {Type: TypeNumber},
			"searchScoreThreshold":     {Type: TypeNumber},
			"titleToDescriptorRatio":   {Type: TypeNumber},
			"userContext": {
				Type: TypeObject,
				Properties: map[string]Property{
					"activeObject": {
						Type: TypeObject,
						Properties: map[string]Property{
							"id":   {Type: TypeString},
							"type": {Type: TypeString},
						},
						Required: []string{"id", "type"},
					},
				},
			},
		},
		Required: []string{"question"},
		Open:     true,
	},

	"ChatHistoryRequest": {
		Name: "ChatHistoryRequest",
		Properties: map[string]Property{
			"chatHistoryInteractionId": {Type: TypeString},
			"threadIdSuffix":           {Type: TypeString},
			"userFeedback":             {Type: TypeString},
			"reset":                    {Type: TypeBoolean},
		},
	},

	"SmtpDestination": {
		Name: "SmtpDestination",
		Properties: map[string]Property{
			"type":          {Type: TypeString},
			"host":          {Type: TypeString},
			"port":          {Type: TypeInteger},
			"username":      {Type: TypeString},
			"password":      {Type: TypeString},
			"fromEmail":     {Type: TypeString},
			"fromEmailName": {Type: TypeString},
		},
		Required: []string{"host", "port", "username", "password", "fromEmail"},
		Open:     true,
	},

	"WebhookDestination": {
		Name: "WebhookDestination",
		Properties: map[string]Property{
			"type":     {Type: TypeString},
			"url":      {Type: TypeString},
			"token":    {Type: TypeString},
			"hasToken": {Type: TypeBoolean},
		},
		Required: []string{"url"},
	},

	"NotificationChannel": {
		Name: "NotificationChannel",
		Properties: map[string]Property{
			"id":                 {Type: TypeString},
			"type":               {Type: TypeString},
			"name":               {Type: TypeString},
			"destinationType":    {Type: TypeString},
			"destination":        {Type: TypeObject, Open: true},
			"customDashboardUrl": {Type: TypeString},
			"allowedRecipients":  {Type: TypeString},
			"notificationFilters": {
				Type: TypeArray,
				Items: &Property{
					Type:       TypeObject,
					Properties: map[string]Property{"filter": {Type: TypeString}},
					Required:   []string{"filter"},
				},
			},
		},
		Required: []string{"id", "type"},
		Open:     true,
	},

	"ExecutionResult": {
		Name: "ExecutionResult",
		Properties: map[string]Property{
			"data": {Type: TypeArray},
			"dimensionHeaders": {
				Type: TypeArray,
				Items: &Property{
					Type: TypeObject,
					Properties: map[string]Property{
						"headerGroups": {Type: TypeArray},
					},
					Required: []string{"headerGroups"},
				},
			},
			"grandTotals": {
				Type: TypeArray,
				Items: &Property{
					Type: TypeObject,
					Properties: map[string]Property{
						"data":            {Type: TypeArray},
						"totalDimensions": {Type: TypeArray, Items: &Property{Type: TypeString}},
					},
					Required: []string{"data", "totalDimensions"},
					Open:     true,
				},
			},
			"paging": {
				Type: TypeObject,
				Properties: map[string]Property{
					"count":  {Type: TypeArray, Items: &Property{Type: TypeInteger}},
					"offset": {Type: TypeArray, Items: &Property{Type: TypeInteger}},
					"total":  {Type: TypeArray, Items: &Property{Type: TypeInteger}},
				},
				Required: []string{"count", "offset", "total"},
			},
		},
		Required: []string{"data", "dimensionHeaders", "grandTotals", "paging"},
		Open:     true,
	},

	"ExecutionResultGrandTotal": {
		Name: "ExecutionResultGrandTotal",
		Properties: map[string]Property{
			"data":            {Type: TypeArray},
			"totalDimensions": {Type: TypeArray, Items: &Property{Type: TypeString}},
		},
		Required: []string{"data", "totalDimensions"},
		Open:     true,
	},

	"ExecutionResultPaging": {
		Name: "ExecutionResultPaging",
		Properties: map[string]Property{
			"count":  {Type: TypeArray, Items: &Property{Type: TypeInteger}},
			"offset": {Type: TypeArray, Items: &Property{Type: TypeInteger}},
			"total":  {Type: TypeArray, Items: &Property{Type: TypeInteger}},
		},
		Required: []string{"count", "offset", "total"},
	},
}
