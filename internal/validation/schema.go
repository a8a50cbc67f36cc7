// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package validation

// Submission types.
const (
	TypeAttentiveness      = "attentiveness"
	TypeScientificAttitude = "scientific_attitude"
	TypeCreativity         = "creativity"
	TypeGeneral            = "general"
)

// SubmissionTypes lists the accepted values of Submission.Type in order.
var SubmissionTypes = []string{TypeAttentiveness, TypeScientificAttitude, TypeCreativity, TypeGeneral}

// Submission is a behavioral data submission. Pointer fields are nil when
// the client omitted them; omitted fields are also omitted when the
// normalized value is encoded.
type Submission struct {
	UserID   *string   `json:"userId" validate:"required,nonempty,userid,min=3,max=50"`
	Type     *string   `json:"type" validate:"required,nonempty,oneof=attentiveness scientific_attitude creativity general"`
	Data     *Data     `json:"data" validate:"required"`
	Metadata *Metadata `json:"metadata,omitempty" validate:"omitempty"`
}

// Data carries the event timestamp and the metric groups.
type Data struct {
	Timestamp          *string             `json:"timestamp" validate:"required,nonempty,isodate"`
	Attentiveness      *Attentiveness      `json:"attentiveness,omitempty" validate:"omitempty"`
	ScientificAttitude *ScientificAttitude `json:"scientific_attitude,omitempty" validate:"omitempty"`
	Creativity         *Creativity         `json:"creativity,omitempty" validate:"omitempty"`
	General            *General            `json:"general,omitempty" validate:"omitempty"`
}

// Attentiveness metrics (AS1-AS8).
type Attentiveness struct {
	FocusDuration      *float64 `json:"focus_duration,omitempty" validate:"omitempty,min=0,max=3600000"`
	TabSwitches        *float64 `json:"tab_switches,omitempty" validate:"omitempty,integer,min=0,max=1000"`
	ScrollEvents       *float64 `json:"scroll_events,omitempty" validate:"omitempty,integer,min=0,max=10000"`
	TypingPauses       *float64 `json:"typing_pauses,omitempty" validate:"omitempty,integer,min=0,max=10000"`
	ClickFrequency     *float64 `json:"click_frequency,omitempty" validate:"omitempty,min=0,max=100"`
	WindowFocusTime    *float64 `json:"window_focus_time,omitempty" validate:"omitempty,min=0,max=3600000"`
	DistractionEvents  *float64 `json:"distraction_events,omitempty" validate:"omitempty,integer,min=0,max=1000"`
	TaskCompletionRate *float64 `json:"task_completion_rate,omitempty" validate:"omitempty,min=0,max=1"`
}

// ScientificAttitude metrics (SA1-SA9).
type ScientificAttitude struct {
	HypothesisCount        *float64 `json:"hypothesis_count,omitempty" validate:"omitempty,integer,min=0,max=100"`
	ExperimentAttempts     *float64 `json:"experiment_attempts,omitempty" validate:"omitempty,integer,min=0,max=100"`
	QuestionFrequency      *float64 `json:"question_frequency,omitempty" validate:"omitempty,min=0,max=100"`
	ObservationNotes       *float64 `json:"observation_notes,omitempty" validate:"omitempty,integer,min=0,max=1000"`
	PatternRecognition     *float64 `json:"pattern_recognition,omitempty" validate:"omitempty,min=0,max=1"`
	CausalReasoning        *float64 `json:"causal_reasoning,omitempty" validate:"omitempty,min=0,max=1"`
	EvidenceBasedDecisions *float64 `json:"evidence_based_decisions,omitempty" validate:"omitempty,min=0,max=1"`
	CriticalThinking       *float64 `json:"critical_thinking,omitempty" validate:"omitempty,min=0,max=1"`
	ScientificMethodUsage  *float64 `json:"scientific_method_usage,omitempty" validate:"omitempty,min=0,max=1"`
}

// Creativity metrics (CP1-CP16).
type Creativity struct {
	OriginalIdeas            *float64 `json:"original_ideas,omitempty" validate:"omitempty,integer,min=0,max=100"`
	DivergentThinking        *float64 `json:"divergent_thinking,omitempty" validate:"omitempty,min=0,max=1"`
	ConvergentThinking       *float64 `json:"convergent_thinking,omitempty" validate:"omitempty,min=0,max=1"`
	CreativeExpression       *float64 `json:"creative_expression,omitempty" validate:"omitempty,min=0,max=1"`
	ProblemSolving           *float64 `json:"problem_solving,omitempty" validate:"omitempty,min=0,max=1"`
	InnovativeSolutions      *float64 `json:"innovative_solutions,omitempty" validate:"omitempty,integer,min=0,max=100"`
	ArtisticCreation         *float64 `json:"artistic_creation,omitempty" validate:"omitempty,min=0,max=1"`
	ImaginativePlay          *float64 `json:"imaginative_play,omitempty" validate:"omitempty,min=0,max=1"`
	CreativeRiskTaking       *float64 `json:"creative_risk_taking,omitempty" validate:"omitempty,min=0,max=1"`
	NovelApproaches          *float64 `json:"novel_approaches,omitempty" validate:"omitempty,integer,min=0,max=100"`
	AestheticSensitivity     *float64 `json:"aesthetic_sensitivity,omitempty" validate:"omitempty,min=0,max=1"`
	CreativeConfidence       *float64 `json:"creative_confidence,omitempty" validate:"omitempty,min=0,max=1"`
	ImaginativeVisualization *float64 `json:"imaginative_visualization,omitempty" validate:"omitempty,min=0,max=1"`
	CreativeProblemFraming   *float64 `json:"creative_problem_framing,omitempty" validate:"omitempty,min=0,max=1"`
	InnovativeCommunication  *float64 `json:"innovative_communication,omitempty" validate:"omitempty,min=0,max=1"`
	CreativePersistence      *float64 `json:"creative_persistence,omitempty" validate:"omitempty,min=0,max=1"`
}

// General behavioral metrics.
type General struct {
	SessionDuration *float64 `json:"session_duration,omitempty" validate:"omitempty,min=0,max=86400000"`
	PageViews       *float64 `json:"page_views,omitempty" validate:"omitempty,integer,min=0,max=10000"`
	Interactions    *float64 `json:"interactions,omitempty" validate:"omitempty,integer,min=0,max=50000"`
	CompletionRate  *float64 `json:"completion_rate,omitempty" validate:"omitempty,min=0,max=1"`
	EngagementScore *float64 `json:"engagement_score,omitempty" validate:"omitempty,min=0,max=1"`
}

// Metadata describes the client environment.
type Metadata struct {
	Browser          *string `json:"browser,omitempty" validate:"omitempty,nonempty,max=100"`
	Platform         *string `json:"platform,omitempty" validate:"omitempty,nonempty,max=50"`
	ScreenResolution *string `json:"screen_resolution,omitempty" validate:"omitempty,nonempty,resolution"`
	Timezone         *string `json:"timezone,omitempty" validate:"omitempty,nonempty,max=50"`
	Language         *string `json:"language,omitempty" validate:"omitempty,nonempty,max=10"`
}

// DataPoints counts the top-level entries of the normalized data object,
// timestamp included.
func (s *Submission) DataPoints() int {
	if s == nil || s.Data == nil {
		return 0
	}
	d := s.Data
	n := 0
	if d.Timestamp != nil {
		n++
	}
	if d.Attentiveness != nil {
		n++
	}
	if d.ScientificAttitude != nil {
		n++
	}
	if d.Creativity != nil {
		n++
	}
	if d.General != nil {
		n++
	}
	return n
}

// UserIDValue returns the submitted user id or "".
func (s *Submission) UserIDValue() string {
	if s == nil || s.UserID == nil {
		return ""
	}
	return *s.UserID
}

// TypeValue returns the submitted type or "".
func (s *Submission) TypeValue() string {
	if s == nil || s.Type == nil {
		return ""
	}
	return *s.Type
}

// TimestampValue returns the normalized data timestamp or "".
func (s *Submission) TimestampValue() string {
	if s == nil || s.Data == nil || s.Data.Timestamp == nil {
		return ""
	}
	return *s.Data.Timestamp
}
