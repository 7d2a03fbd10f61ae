package model

// Destination Types - supported notification channel destinations
const (
	DestinationTypeSMTP       = "smtp"
	DestinationTypeWebhook    = "webhook"
	DestinationTypeInPlatform = "inPlatform"
)

// Chat Routing Use Cases - how the AI backend classified a question
const (
	RoutingUseCaseGeneral       = "GENERAL"
	RoutingUseCaseSearch        = "SEARCH"
	RoutingUseCaseVisualization = "CREATE_VISUALIZATION"
)

// User Feedback - feedback states recorded on a chat interaction
const (
	UserFeedbackPositive = "POSITIVE"
	UserFeedbackNegative = "NEGATIVE"
	UserFeedbackNone     = "NONE"
)

// Total Functions - aggregation functions reported in grand total headers
const (
	TotalFunctionSum = "SUM"
	TotalFunctionMin = "MIN"
	TotalFunctionMax = "MAX"
	TotalFunctionAvg = "AVG"
	TotalFunctionMed = "MED"
)
