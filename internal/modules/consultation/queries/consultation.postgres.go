package queries

// ConsultationQueries regroupe les requêtes SQL des consultations
var ConsultationQueries = struct {
	Insert        string
	GetByID       string
	SearchBase    string
	Replace       string
	Patch         string
	Delete        string
	ExistsDossier string
	ExistsMedecin string
}{
	/**
	 * Enregistre une consultation
	 * Paramètres: $1=id, $2=dossier_id, $3=medecin_id, $4=date_consultation,
	 *             $5=motif, $6=diagnostic, $7=notes
	 */
	Insert: `
		INSERT INTO clinique_consultation
			(id, dossier_id, medecin_id, date_consultation, motif, diagnostic, notes)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7)
		RETURNING created_at
	`,

	/**
	 * Récupère une consultation
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, dossier_id, medecin_id,
			to_char(date_consultation, 'YYYY-MM-DD'),
			motif, COALESCE(diagnostic, ''), COALESCE(notes, ''), created_at
		FROM clinique_consultation
		WHERE id = $1
	`,

	/**
	 * Base de recherche, complétée par les fragments de filtres
	 * (dossier_id, medecin_id, motif contains, bornes de dates)
	 */
	SearchBase: `
		SELECT id, dossier_id, medecin_id,
			to_char(date_consultation, 'YYYY-MM-DD'),
			motif, COALESCE(diagnostic, ''), COALESCE(notes, ''), created_at
		FROM clinique_consultation
		WHERE 1=1
	`,

	/**
	 * Remplacement complet des champs cliniques
	 * Paramètres: $1=id, $2=date_consultation, $3=motif, $4=diagnostic, $5=notes
	 */
	Replace: `
		UPDATE clinique_consultation SET
			date_consultation = $2::date,
			motif = $3,
			diagnostic = $4,
			notes = $5,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Mise à jour partielle : les paramètres NULL conservent la valeur existante
	 * Paramètres: $1=id, $2=date_consultation, $3=motif, $4=diagnostic, $5=notes
	 */
	Patch: `
		UPDATE clinique_consultation SET
			date_consultation = COALESCE($2::date, date_consultation),
			motif = COALESCE($3, motif),
			diagnostic = COALESCE($4, diagnostic),
			notes = COALESCE($5, notes),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime une consultation
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_consultation WHERE id = $1
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
}

// CertificatQueries regroupe les requêtes SQL des certificats médicaux
var CertificatQueries = struct {
	Insert     string
	GetByID    string
	SearchBase string
	Replace    string
	Patch      string
	Delete     string
}{
	/**
	 * Établit un certificat
	 * Paramètres: $1=id, $2=dossier_id, $3=medecin_id, $4=contenu, $5=duree_repos_jours
	 */
	Insert: `
		INSERT INTO clinique_certificat
			(id, dossier_id, medecin_id, contenu, duree_repos_jours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,

	/**
	 * Récupère un certificat
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, dossier_id, medecin_id, contenu, duree_repos_jours, created_at
		FROM clinique_certificat
		WHERE id = $1
	`,

	/**
	 * Base de recherche des certificats
	 */
	SearchBase: `
		SELECT id, dossier_id, medecin_id, contenu, duree_repos_jours, created_at
		FROM clinique_certificat
		WHERE 1=1
	`,

	/**
	 * Remplacement complet d'un certificat
	 * Paramètres: $1=id, $2=contenu, $3=duree_repos_jours
	 */
	Replace: `
		UPDATE clinique_certificat SET
			contenu = $2,
			duree_repos_jours = $3,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Mise à jour partielle d'un certificat
	 * Paramètres: $1=id, $2=contenu, $3=duree_repos_jours
	 */
	Patch: `
		UPDATE clinique_certificat SET
			contenu = COALESCE($2, contenu),
			duree_repos_jours = COALESCE($3, duree_repos_jours),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime un certificat
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_certificat WHERE id = $1
	`,
}
