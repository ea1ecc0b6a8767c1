// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/ravitej/prepmate/ent/learningplan"
	"github.com/ravitej/prepmate/ent/llmrequestevent"
	"github.com/ravitej/prepmate/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learningplanFields := schema.LearningPlan{}.Fields()
	_ = learningplanFields
	// learningplanDescPlanID is the schema descriptor for plan_id field.
	learningplanDescPlanID := learningplanFields[0].Descriptor()
	// learningplan.DefaultPlanID holds the default value on creation for the plan_id field.
	learningplan.DefaultPlanID = learningplanDescPlanID.Default.(func() uuid.UUID)
	// learningplanDescUserID is the schema descriptor for user_id field.
	learningplanDescUserID := learningplanFields[1].Descriptor()
	// learningplan.DefaultUserID holds the default value on creation for the user_id field.
	learningplan.DefaultUserID = learningplanDescUserID.Default.(string)
	// learningplanDescSyllabusVersion is the schema descriptor for syllabus_version field.
	learningplanDescSyllabusVersion := learningplanFields[3].Descriptor()
	// learningplan.DefaultSyllabusVersion holds the default value on creation for the syllabus_version field.
	learningplan.DefaultSyllabusVersion = learningplanDescSyllabusVersion.Default.(string)
	// learningplanDescStatus is the schema descriptor for status field.
	learningplanDescStatus := learningplanFields[6].Descriptor()
	// learningplan.DefaultStatus holds the default value on creation for the status field.
	learningplan.DefaultStatus = learningplanDescStatus.Default.(string)
	// learningplanDescCreatedAt is the schema descriptor for created_at field.
	learningplanDescCreatedAt := learningplanFields[7].Descriptor()
	// learningplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningplan.DefaultCreatedAt = learningplanDescCreatedAt.Default.(func() time.Time)
	// learningplanDescUpdatedAt is the schema descriptor for updated_at field.
	learningplanDescUpdatedAt := learningplanFields[8].Descriptor()
	// learningplan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learningplan.DefaultUpdatedAt = learningplanDescUpdatedAt.Default.(func() time.Time)
	// learningplan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learningplan.UpdateDefaultUpdatedAt = learningplanDescUpdatedAt.UpdateDefault.(func() time.Time)
}
