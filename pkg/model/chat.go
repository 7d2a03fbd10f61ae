package model

// ChatRequest describes a question sent to the AI chat endpoint.
// Only Question is required; the remaining members tune search and
// visualization creation and fall back to server-side defaults when absent.
type ChatRequest struct {
	Question                 string           `json:"question,omitempty" minLength:"1"`
	ChatHistoryInteractionID string           `json:"chatHistoryInteractionId,omitempty"`
	LimitCreate              *int             `json:"limitCreate,omitempty"`
	LimitSearch              *int             `json:"limitSearch,omitempty"`
	RelevantScoreThreshold   *float64         `json:"relevantScoreThreshold,omitempty"`
	SearchScoreThreshold     *float64         `json:"searchScoreThreshold,omitempty"`
	TitleToDescriptorRatio   *float64         `json:"titleToDescriptorRatio,omitempty"`
	UserContext              *ChatUserContext `json:"userContext,omitempty"`

	Extra ExtraProperties `json:"-"`
}

func (r ChatRequest) MarshalJSON() ([]byte, error) {
	type plain ChatRequest
	return marshalWithExtras(plain(r), r.Extra)
}

func (r *ChatRequest) UnmarshalJSON(data []byte) error {
	type plain ChatRequest
	var p plain
	extras, err := unmarshalWithExtras(data, &p)
	if err != nil {
		return err
	}
	*r = ChatRequest(p)
	r.Extra = extras
	return nil
}

// ChatUserContext carries the workspace object the user had open when asking.
type ChatUserContext struct {
	ActiveObject *ActiveObject `json:"activeObject,omitempty"`
}

// ActiveObject identifies a workspace object by id and type
type ActiveObject struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// ChatResult is the AI chat answer for a single question
type ChatResult struct {
	ChatHistoryInteractionID string                 `json:"chatHistoryInteractionId,omitempty"`
	Routing                  *ChatRouting           `json:"routing,omitempty"`
	TextResponse             string                 `json:"textResponse,omitempty"`
	FoundObjects             *FoundObjects          `json:"foundObjects,omitempty"`
	CreatedVisualizations    *CreatedVisualizations `json:"createdVisualizations,omitempty"`

	Extra ExtraProperties `json:"-"`
}

func (r ChatResult) MarshalJSON() ([]byte, error) {
	type plain ChatResult
	return marshalWithExtras(plain(r), r.Extra)
}

func (r *ChatResult) UnmarshalJSON(data []byte) error {
	type plain ChatResult
	var p plain
	extras, err := unmarshalWithExtras(data, &p)
	if err != nil {
		return err
	}
	*r = ChatResult(p)
	r.Extra = extras
	return nil
}

// ChatRouting explains which use case the question was routed to
type ChatRouting struct {
	UseCase   string `json:"useCase"`
	Reasoning string `json:"reasoning,omitempty"`
}

// FoundObjects lists workspace objects matched by semantic search
type FoundObjects struct {
	Objects   []FoundObject `json:"objects,omitempty"`
	Reasoning string        `json:"reasoning,omitempty"`
}

// FoundObject is a single search hit
type FoundObject struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}

// CreatedVisualizations lists visualizations the AI proposed for the question
type CreatedVisualizations struct {
	Objects   []VisualizationObject `json:"objects,omitempty"`
	Reasoning string                `json:"reasoning,omitempty"`
}

// VisualizationObject is a proposed visualization definition
type VisualizationObject struct {
	ID                string               `json:"id"`
	Title             string               `json:"title,omitempty"`
	VisualizationType string               `json:"visualizationType,omitempty"`
	Metrics           []ChatMetric         `json:"metrics,omitempty"`
	Dimensionality    []ChatDimensionality `json:"dimensionality,omitempty"`
	Filters           []map[string]any     `json:"filters,omitempty"`
}

// ChatMetric is a measure reference inside a proposed visualization
type ChatMetric struct {
	AggFunction string `json:"aggFunction,omitempty"`
	ObjectID    string `json:"objectId"`
	ObjectType  string `json:"objectType"`
	Title       string `json:"title,omitempty"`
}

// ChatDimensionality is an attribute reference inside a proposed visualization
type ChatDimensionality struct {
	ObjectID   string `json:"objectId"`
	ObjectType string `json:"objectType"`
	Title      string `json:"title,omitempty"`
}

// ChatHistoryRequest manipulates the chat thread: fetch interactions after a
// given one, record user feedback, or reset the thread.
type ChatHistoryRequest struct {
	ChatHistoryInteractionID string `json:"chatHistoryInteractionId,omitempty"`
	ThreadIDSuffix           string `json:"threadIdSuffix,omitempty"`
	UserFeedback             string `json:"userFeedback,omitempty"`
	Reset                    bool   `json:"reset,omitempty"`
}

// ChatHistoryResult is the recorded conversation
type ChatHistoryResult struct {
	Interactions []ChatHistoryInteraction `json:"interactions"`
}

// ChatHistoryInteraction is one question/answer pair from the thread
type ChatHistoryInteraction struct {
	ChatHistoryInteractionID string                 `json:"chatHistoryInteractionId"`
	Question                 string                 `json:"question"`
	Routing                  *ChatRouting           `json:"routing,omitempty"`
	TextResponse             string                 `json:"textResponse,omitempty"`
	CreatedVisualizations    *CreatedVisualizations `json:"createdVisualizations,omitempty"`
	InteractionFinished      bool                   `json:"interactionFinished,omitempty"`
}
