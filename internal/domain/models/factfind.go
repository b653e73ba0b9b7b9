// internal/domain/models/factfind.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FactFind is the intake questionnaire captured for a customer.
// Responses maps a question key to the customer's answer.
type FactFind struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID string             `bson:"customer_id" json:"customer_id"`
	Responses  map[string]string  `bson:"responses" json:"responses"`
	Stage      string             `bson:"stage" json:"stage"` // new | in_progress | completed
}

const (
	FactFindStageNew        = "new"
	FactFindStageInProgress = "in_progress"
	FactFindStageCompleted  = "completed"
)

// FactFindStages lists every accepted FactFind.Stage value.
var FactFindStages = []string{FactFindStageNew, FactFindStageInProgress, FactFindStageCompleted}
