package queries

// SoinQueries regroupe les requêtes SQL des soins infirmiers
var SoinQueries = struct {
	Insert          string
	GetByID         string
	SearchBase      string
	Replace         string
	Patch           string
	Delete          string
	ExistsDossier   string
	ExistsInfirmier string
}{
	/**
	 * Enregistre un soin infirmier
	 * Paramètres: $1=id, $2=dossier_id, $3=infirmier_id, $4=date_soin,
	 *             $5=description, $6=observation
	 */
	Insert: `
		INSERT INTO clinique_soin_infirmier
			(id, dossier_id, infirmier_id, date_soin, description, observation)
		VALUES ($1, $2, $3, $4::date, $5, $6)
		RETURNING created_at
	`,

	/**
	 * Récupère un soin
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, dossier_id, infirmier_id,
			to_char(date_soin, 'YYYY-MM-DD'),
			description, COALESCE(observation, ''), created_at
		FROM clinique_soin_infirmier
		WHERE id = $1
	`,

	/**
	 * Base de recherche des soins
	 */
	SearchBase: `
		SELECT id, dossier_id, infirmier_id,
			to_char(date_soin, 'YYYY-MM-DD'),
			description, COALESCE(observation, ''), created_at
		FROM clinique_soin_infirmier
		WHERE 1=1
	`,

	/**
	 * Remplacement complet des champs du soin
	 * Paramètres: $1=id, $2=date_soin, $3=description, $4=observation
	 */
	Replace: `
		UPDATE clinique_soin_infirmier SET
			date_soin = $2::date,
			description = $3,
			observation = $4,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Mise à jour partielle d'un soin
	 * Paramètres: $1=id, $2=date_soin, $3=description, $4=observation
	 */
	Patch: `
		UPDATE clinique_soin_infirmier SET
			date_soin = COALESCE($2::date, date_soin),
			description = COALESCE($3, description),
			observation = COALESCE($4, observation),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime un soin, ses médicaments suivent en cascade
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_soin_infirmier WHERE id = $1
	`,

	/**
	 * Vérifie l'existence du dossier référencé
	 * Paramètres: $1 = dossier_id
	 */
	ExistsDossier: `
		SELECT EXISTS (SELECT 1 FROM dossier_dossier WHERE id = $1)
	`,

	/**
	 * Vérifie que le profil référencé est un infirmier
	 * Paramètres: $1 = profil_technique_id
	 */
	ExistsInfirmier: `
		SELECT EXISTS (
			SELECT 1 FROM comptes_profil_technique
			WHERE id = $1 AND role_metier = 'infirmier'
		)
	`,
}
