package queries

// ComptesQueries regroupe les requêtes SQL des comptes utilisateur
var ComptesQueries = struct {
	Insert       string
	GetByID      string
	SearchBase   string
	Update       string
	Delete       string
	ExistsEmail  string
	InsertProfil string
	UpdateProfil string
}{
	/**
	 * Crée un compte utilisateur
	 * Paramètres: $1=id, $2=email, $3=password_hash, $4=role, $5=nom,
	 *             $6=prenoms, $7=telephone
	 */
	Insert: `
		INSERT INTO comptes_utilisateur (id, email, password_hash, role, nom, prenoms, telephone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`,

	/**
	 * Récupère un compte avec son éventuel profil technique
	 * Paramètres: $1 = id
	 */
	GetByID: `
		SELECT
			u.id, u.email, u.role, u.nom, u.prenoms,
			COALESCE(u.telephone, ''), u.statut, u.created_at,
			pt.id, pt.role_metier, pt.outils
		FROM comptes_utilisateur u
		LEFT JOIN comptes_profil_technique pt ON pt.utilisateur_id = u.id
		WHERE u.id = $1
	`,

	/**
	 * Base de recherche des comptes, complétée par les fragments de filtres
	 * (email contains, nom contains, role equals)
	 */
	SearchBase: `
		SELECT
			u.id, u.email, u.role, u.nom, u.prenoms,
			COALESCE(u.telephone, ''), u.statut, u.created_at,
			pt.id, pt.role_metier, pt.outils
		FROM comptes_utilisateur u
		LEFT JOIN comptes_profil_technique pt ON pt.utilisateur_id = u.id
		WHERE 1=1
	`,

	/**
	 * Mise à jour partielle : les paramètres NULL conservent la valeur existante
	 * Paramètres: $1=id, $2=email, $3=password_hash, $4=nom, $5=prenoms,
	 *             $6=telephone, $7=statut
	 */
	Update: `
		UPDATE comptes_utilisateur SET
			email = COALESCE($2, email),
			password_hash = COALESCE($3, password_hash),
			nom = COALESCE($4, nom),
			prenoms = COALESCE($5, prenoms),
			telephone = COALESCE($6, telephone),
			statut = COALESCE($7, statut),
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime un compte (le profil technique suit en cascade)
	 * Paramètres: $1 = id
	 */
	Delete: `
		DELETE FROM comptes_utilisateur WHERE id = $1
	`,

	/**
	 * Vérifie l'unicité d'un email
	 * Paramètres: $1 = email
	 */
	ExistsEmail: `
		SELECT EXISTS (SELECT 1 FROM comptes_utilisateur WHERE email = $1)
	`,

	/**
	 * Crée le profil technique d'un technicien
	 * Paramètres: $1=id, $2=utilisateur_id, $3=role_metier, $4=outils
	 */
	InsertProfil: `
		INSERT INTO comptes_profil_technique (id, utilisateur_id, role_metier, outils)
		VALUES ($1, $2, $3, $4)
	`,

	/**
	 * Met à jour le profil technique
	 * Paramètres: $1=utilisateur_id, $2=role_metier, $3=outils
	 */
	UpdateProfil: `
		UPDATE comptes_profil_technique SET
			role_metier = COALESCE($2, role_metier),
			outils = COALESCE($3, outils),
			updated_at = NOW()
		WHERE utilisateur_id = $1
	`,
}
