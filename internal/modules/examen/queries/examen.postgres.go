package queries

// ExamenBioQueries regroupe les requêtes SQL des examens biologiques
var ExamenBioQueries = struct {
	Insert           string
	GetByID          string
	SearchBase       string
	Replace          string
	Patch            string
	Delete           string
	ExistsDossier    string
	ExistsLaborantin string
	ResultatsByID    string
}{
	/**
	 * Prescrit un examen biologique
	 * Paramètres: $1=id, $2=dossier_id, $3=laborantin_id, $4=type_examen, $5=date_examen
	 */
	Insert: `
		INSERT INTO clinique_examen_biologique
			(id, dossier_id, laborantin_id, type_examen, date_examen)
		VALUES ($1, $2, $3, $4, $5::date)
		RETURNING created_at
	`,

	/**
	 * Récupère un examen biologique
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, dossier_id, laborantin_id, type_examen,
			to_char(date_examen, 'YYYY-MM-DD'), statut, created_at
		FROM clinique_examen_biologique
		WHERE id = $1
	`,

	/**
	 * Base de recherche des examens biologiques
	 */
	SearchBase: `
		SELECT id, dossier_id, laborantin_id, type_examen,
			to_char(date_examen, 'YYYY-MM-DD'), statut, created_at
		FROM clinique_examen_biologique
		WHERE 1=1
	`,

	/**
	 * Remplacement complet d'un examen biologique
	 * Paramètres: $1=id, $2=type_examen, $3=date_examen, $4=statut
	 */
	Replace: `
		UPDATE clinique_examen_biologique SET
			type_examen = $2,
			date_examen = $3::date,
			statut = $4,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Mise à jour partielle d'un examen biologique
	 * Paramètres: $1=id, $2=type_examen, $3=date_examen, $4=statut
	 */
	Patch: `
		UPDATE clinique_examen_biologique SET
			type_examen = COALESCE($2, type_examen),
			date_examen = COALESCE($3::date, date_examen),
			statut = COALESCE($4, statut),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime un examen biologique, ses résultats suivent en cascade
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_examen_biologique WHERE id = $1
	`,

	/**
	 * Vérifie l'existence du dossier référencé
	 * Paramètres: $1 = dossier_id
	 */
	ExistsDossier: `
		SELECT EXISTS (SELECT 1 FROM dossier_dossier WHERE id = $1)
	`,

	/**
	 * Vérifie que le profil référencé est un laborantin
	 * Paramètres: $1 = profil_technique_id
	 */
	ExistsLaborantin: `
		SELECT EXISTS (
			SELECT 1 FROM comptes_profil_technique
			WHERE id = $1 AND role_metier = 'laborantin'
		)
	`,

	/**
	 * Liste les résultats d'un examen biologique
	 * Paramètres: $1 = examen_biologique_id
	 */
	ResultatsByID: `
		SELECT id, examen_biologique_id, laborantin_id, contenu,
			to_char(date_resultat, 'YYYY-MM-DD'), created_at
		FROM clinique_resultat_examen
		WHERE examen_biologique_id = $1
		ORDER BY date_resultat DESC
	`,
}

// ResultatQueries regroupe les requêtes SQL des résultats d'examens
var ResultatQueries = struct {
	Insert       string
	GetByID      string
	Patch        string
	Delete       string
	ExistsExamen string
}{
	/**
	 * Consigne un résultat d'examen et marque l'examen terminé
	 * Paramètres: $1=id, $2=examen_biologique_id, $3=laborantin_id,
	 *             $4=contenu, $5=date_resultat
	 */
	Insert: `
		WITH resultat AS (
			INSERT INTO clinique_resultat_examen
				(id, examen_biologique_id, laborantin_id, contenu, date_resultat)
			VALUES ($1, $2, $3, $4, $5::date)
			RETURNING created_at, examen_biologique_id
		)
		UPDATE clinique_examen_biologique e SET
			statut = 'termine',
			updated_at = NOW()
		FROM resultat
		WHERE e.id = resultat.examen_biologique_id
		RETURNING resultat.created_at
	`,

	/**
	 * Récupère un résultat
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, examen_biologique_id, laborantin_id, contenu,
			to_char(date_resultat, 'YYYY-MM-DD'), created_at
		FROM clinique_resultat_examen
		WHERE id = $1
	`,

	/**
	 * Mise à jour partielle d'un résultat
	 * Paramètres: $1=id, $2=contenu, $3=date_resultat
	 */
	Patch: `
		UPDATE clinique_resultat_examen SET
			contenu = COALESCE($2, contenu),
			date_resultat = COALESCE($3::date, date_resultat),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime un résultat
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_resultat_examen WHERE id = $1
	`,

	/**
	 * Vérifie l'existence de l'examen biologique référencé
	 * Paramètres: $1 = examen_biologique_id
	 */
	ExistsExamen: `
		SELECT EXISTS (SELECT 1 FROM clinique_examen_biologique WHERE id = $1)
	`,
}

// ExamenRadioQueries regroupe les requêtes SQL des examens radiologiques
var ExamenRadioQueries = struct {
	Insert           string
	GetByID          string
	SearchBase       string
	Replace          string
	Patch            string
	Delete           string
	ExistsDossier    string
	ExistsRadiologue string
	ImagesByID       string
}{
	/**
	 * Prescrit un examen radiologique
	 * Paramètres: $1=id, $2=dossier_id, $3=radiologue_id, $4=type_examen, $5=date_examen
	 */
	Insert: `
		INSERT INTO clinique_examen_radiologique
			(id, dossier_id, radiologue_id, type_examen, date_examen)
		VALUES ($1, $2, $3, $4, $5::date)
		RETURNING created_at
	`,

	/**
	 * Récupère un examen radiologique
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, dossier_id, radiologue_id, type_examen,
			to_char(date_examen, 'YYYY-MM-DD'), statut, created_at
		FROM clinique_examen_radiologique
		WHERE id = $1
	`,

	/**
	 * Base de recherche des examens radiologiques
	 */
	SearchBase: `
		SELECT id, dossier_id, radiologue_id, type_examen,
			to_char(date_examen, 'YYYY-MM-DD'), statut, created_at
		FROM clinique_examen_radiologique
		WHERE 1=1
	`,

	/**
	 * Remplacement complet d'un examen radiologique
	 * Paramètres: $1=id, $2=type_examen, $3=date_examen, $4=statut
	 */
	Replace: `
		UPDATE clinique_examen_radiologique SET
			type_examen = $2,
			date_examen = $3::date,
			statut = $4,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Mise à jour partielle d'un examen radiologique
	 * Paramètres: $1=id, $2=type_examen, $3=date_examen, $4=statut
	 */
	Patch: `
		UPDATE clinique_examen_radiologique SET
			type_examen = COALESCE($2, type_examen),
			date_examen = COALESCE($3::date, date_examen),
			statut = COALESCE($4, statut),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime un examen radiologique, ses images suivent en cascade
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_examen_radiologique WHERE id = $1
	`,

	/**
	 * Vérifie l'existence du dossier référencé
	 * Paramètres: $1 = dossier_id
	 */
	ExistsDossier: `
		SELECT EXISTS (SELECT 1 FROM dossier_dossier WHERE id = $1)
	`,

	/**
	 * Vérifie que le profil référencé est un radiologue
	 * Paramètres: $1 = profil_technique_id
	 */
	ExistsRadiologue: `
		SELECT EXISTS (
			SELECT 1 FROM comptes_profil_technique
			WHERE id = $1 AND role_metier = 'radiologue'
		)
	`,

	/**
	 * Liste les images d'un examen radiologique
	 * Paramètres: $1 = examen_radiologique_id
	 */
	ImagesByID: `
		SELECT id, examen_radiologique_id, radiologue_id, fichier_path, created_at
		FROM clinique_image_radiologique
		WHERE examen_radiologique_id = $1
		ORDER BY created_at
	`,
}

// ImageQueries regroupe les requêtes SQL des images radiologiques
var ImageQueries = struct {
	Insert           string
	GetByID          string
	GetFichierPath   string
	Delete           string
	ExistsExamen     string
	ProfilIDByUserID string
}{
	/**
	 * Référence une image uploadée
	 * Paramètres: $1=id, $2=examen_radiologique_id, $3=radiologue_id, $4=fichier_path
	 */
	Insert: `
		INSERT INTO clinique_image_radiologique
			(id, examen_radiologique_id, radiologue_id, fichier_path)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`,

	/**
	 * Récupère une image
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT id, examen_radiologique_id, radiologue_id, fichier_path, created_at
		FROM clinique_image_radiologique
		WHERE id = $1
	`,

	/**
	 * Récupère le chemin du fichier d'une image
	 * Paramètres: $1 = id
	 */
	GetFichierPath: `
		SELECT fichier_path FROM clinique_image_radiologique WHERE id = $1
	`,

	/**
	 * Supprime la référence d'une image
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM clinique_image_radiologique WHERE id = $1
	`,

	/**
	 * Vérifie l'existence de l'examen radiologique référencé
	 * Paramètres: $1 = examen_radiologique_id
	 */
	ExistsExamen: `
		SELECT EXISTS (SELECT 1 FROM clinique_examen_radiologique WHERE id = $1)
	`,

	/**
	 * Résout le profil technique de l'utilisateur agissant
	 * Paramètres: $1 = utilisateur_id
	 */
	ProfilIDByUserID: `
		SELECT id FROM comptes_profil_technique WHERE utilisateur_id = $1
	`,
}
