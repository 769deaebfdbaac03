package queries

// OrdonnanceQueries regroupe les requêtes SQL des ordonnances
var OrdonnanceQueries = struct {
	Insert           string
	GetByID          string
	SearchBase       string
	Replace          string
	Patch            string
	Validate         string
	Delete           string
	ExistsDossier    string
	ExistsMedecin    string
	ProfilIDByUserID string
	MedicamentsByID  string
}{
	/**
	 * Prescrit une ordonnance
	 * Paramètres: $1=id, $2=dossier_id, $3=medecin_id, $4=date_prescription,
	 *             $5=instructions
	 */
	Insert: `
		INSERT INTO clinique_ordonnance
			(id, dossier_id, medecin_id, date_prescription, instructions)
		VALUES ($1, $2, $3, $4::date, $5)
		RETURNING created_at
	`,

	/**
	 * Récupère une ordonnance
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, dossier_id, medecin_id,
			to_char(date_prescription, 'YYYY-MM-DD'),
			COALESCE(instructions, ''), est_validee, validee_par, validee_at, created_at
		FROM clinique_ordonnance
		WHERE id = $1
	`,

	/**
	 * Base de recherche des ordonnances
	 */
	SearchBase: `
		SELECT id, dossier_id, medecin_id,
			to_char(date_prescription, 'YYYY-MM-DD'),
			COALESCE(instructions, ''), est_validee, validee_par, validee_at, created_at
		FROM clinique_ordonnance
		WHERE 1=1
	`,

	/**
	 * Remplacement complet des champs de prescription.
	 * La décision de validation est remise à zéro.
	 * Paramètres: $1=id, $2=date_prescription, $3=instructions
	 */
	Replace: `
		UPDATE clinique_ordonnance SET
			date_prescription = $2::date,
			instructions = $3,
			est_validee = FALSE,
			validee_par = NULL,
			validee_at = NULL,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Mise à jour partielle d'une ordonnance
	 * Paramètres: $1=id, $2=date_prescription, $3=instructions
	 */
	Patch: `
		UPDATE clinique_ordonnance SET
			date_prescription = COALESCE($2::date, date_prescription),
			instructions = COALESCE($3, instructions),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Applique la décision de validation d'un médecin
	 * Paramètres: $1=id, $2=est_validee, $3=validee_par (profil du médecin)
	 */
	Validate: `
		UPDATE clinique_ordonnance SET
			est_validee = $2,
			validee_par = $3,
			validee_at = NOW(),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime une ordonnance, ses médicaments suivent en cascade
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_ordonnance WHERE id = $1
	`,

	/**
	 * Vérifie l'existence du dossier référencé
	 * Paramètres: $1 = dossier_id
	 */
	ExistsDossier: `
		SELECT EXISTS (SELECT 1 FROM dossier_dossier WHERE id = $1)
	`,

	/**
	 * Vérifie que le profil référencé est un médecin
	 * Paramètres: $1 = profil_technique_id
	 */
	ExistsMedecin: `
		SELECT EXISTS (
			SELECT 1 FROM comptes_profil_technique
			WHERE id = $1 AND role_metier = 'medecin'
		)
	`,

	/**
	 * Résout le profil technique de l'utilisateur agissant
	 * Paramètres: $1 = utilisateur_id
	 */
	ProfilIDByUserID: `
		SELECT id FROM comptes_profil_technique WHERE utilisateur_id = $1
	`,

	/**
	 * Liste les médicaments d'une ordonnance
	 * Paramètres: $1 = ordonnance_id
	 */
	MedicamentsByID: `
		SELECT id, ordonnance_id, soin_id, nom, dosage,
			COALESCE(frequence, ''), duree_jours, created_at
		FROM clinique_medicament
		WHERE ordonnance_id = $1
		ORDER BY created_at
	`,
}

// MedicamentQueries regroupe les requêtes SQL des médicaments
var MedicamentQueries = struct {
	Insert     string
	GetByID    string
	SearchBase string
	Patch      string
	Delete     string
	ExistsOrdo string
	ExistsSoin string
}{
	/**
	 * Rattache un médicament (exclusivité vérifiée en amont et par contrainte)
	 * Paramètres: $1=id, $2=ordonnance_id, $3=soin_id, $4=nom, $5=dosage,
	 *             $6=frequence, $7=duree_jours
	 */
	Insert: `
		INSERT INTO clinique_medicament
			(id, ordonnance_id, soin_id, nom, dosage, frequence, duree_jours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`,

	/**
	 * Récupère un médicament
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, ordonnance_id, soin_id, nom, dosage,
			COALESCE(frequence, ''), duree_jours, created_at
		FROM clinique_medicament
		WHERE id = $1
	`,

	/**
	 * Base de recherche des médicaments
	 */
	SearchBase: `
		SELECT id, ordonnance_id, soin_id, nom, dosage,
			COALESCE(frequence, ''), duree_jours, created_at
		FROM clinique_medicament
		WHERE 1=1
	`,

	/**
	 * Mise à jour partielle, le rattachement est immuable
	 * Paramètres: $1=id, $2=nom, $3=dosage, $4=frequence, $5=duree_jours
	 */
	Patch: `
		UPDATE clinique_medicament SET
			nom = COALESCE($2, nom),
			dosage = COALESCE($3, dosage),
			frequence = COALESCE($4, frequence),
			duree_jours = COALESCE($5, duree_jours),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime un médicament
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_medicament WHERE id = $1
	`,

	/**
	 * Vérifie l'existence de l'ordonnance de rattachement
	 * Paramètres: $1 = ordonnance_id
	 */
	ExistsOrdo: `
		SELECT EXISTS (SELECT 1 FROM clinique_ordonnance WHERE id = $1)
	`,

	/**
	 * Vérifie l'existence du soin de rattachement
	 * Paramètres: $1 = soin_id
	 */
	ExistsSoin: `
		SELECT EXISTS (SELECT 1 FROM clinique_soin_infirmier WHERE id = $1)
	`,
}
