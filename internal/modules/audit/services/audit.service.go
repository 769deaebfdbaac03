package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hopital-core/internal/infrastructure/database/mongodb"
)

const auditCollection = "mutations_cliniques"

// AuditEvent trace une mutation clinique (création, modification,
// validation, suppression) dans le journal MongoDB
type AuditEvent struct {
	Action        string                 // ex: "ordonnance.validation"
	Ressource     string                 // ex: "ordonnance"
	RessourceID   uuid.UUID
	UtilisateurID uuid.UUID
	Donnees       map[string]interface{} // état significatif après mutation
}

// AuditService journalise les mutations cliniques dans MongoDB.
// Best-effort : un échec d'écriture n'interrompt jamais l'opération métier.
type AuditService struct {
	mongo *mongodb.Client
}

func NewAuditService(mongo *mongodb.Client) *AuditService {
	return &AuditService{mongo: mongo}
}

// Record enregistre un événement de façon asynchrone.
// L'appelant n'attend pas l'écriture, un contexte détaché est utilisé.
func (s *AuditService) Record(event AuditEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		doc := bson.M{
			"action":         event.Action,
			"ressource":      event.Ressource,
			"ressource_id":   event.RessourceID.String(),
			"utilisateur_id": event.UtilisateurID.String(),
			"donnees":        event.Donnees,
			"enregistre_at":  time.Now().UTC(),
		}

		if _, err := s.mongo.Collection(auditCollection).InsertOne(ctx, doc); err != nil {
			fmt.Printf("[AUDIT] ⚠️ Écriture échouée (%s %s): %v\n",
				event.Action, event.RessourceID, err)
		}
	}()
}

// RecentForRessource retourne les derniers événements d'une ressource,
// du plus récent au plus ancien
func (s *AuditService) RecentForRessource(ctx context.Context, ressource string, ressourceID uuid.UUID, limit int64) ([]bson.M, error) {
	opts := options.Find().
		SetSort(bson.M{"enregistre_at": -1}).
		SetLimit(limit)
	cursor, err := s.mongo.Collection(auditCollection).Find(ctx, bson.M{
		"ressource":    ressource,
		"ressource_id": ressourceID.String(),
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("lecture audit échouée: %w", err)
	}
	defer cursor.Close(ctx)

	var events []bson.M
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("décodage audit échoué: %w", err)
	}
	return events, nil
}
