package queries

// AuthQueries regroupe les requêtes SQL de l'authentification
var AuthQueries = struct {
	GetByEmail            string
	GetRoleMetierByUserID string
	InsertBlacklist       string
	IsBlacklisted         string
	CleanExpiredBlacklist string
}{
	/**
	 * Récupère un compte actif par email avec son éventuel profil technique
	 * Paramètres: $1 = email
	 */
	GetByEmail: `
		SELECT
			u.id,
			u.email,
			u.password_hash,
			u.role,
			u.nom,
			u.prenoms,
			pt.role_metier
		FROM comptes_utilisateur u
		LEFT JOIN comptes_profil_technique pt ON pt.utilisateur_id = u.id
		WHERE u.email = $1
		  AND u.statut = 'actif'
	`,

	/**
	 * Récupère le rôle métier d'un utilisateur (fallback du cache Redis)
	 * Paramètres: $1 = utilisateur_id
	 */
	GetRoleMetierByUserID: `
		SELECT pt.role_metier
		FROM comptes_profil_technique pt
		WHERE pt.utilisateur_id = $1
	`,

	/**
	 * Blackliste un refresh token (fallback PostgreSQL)
	 * Paramètres: $1 = token, $2 = expires_at
	 */
	InsertBlacklist: `
		INSERT INTO auth_refresh_blacklist (token, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING
	`,

	/**
	 * Vérifie si un refresh token est blacklisté (fallback PostgreSQL)
	 * Paramètres: $1 = token
	 */
	IsBlacklisted: `
		SELECT EXISTS (
			SELECT 1 FROM auth_refresh_blacklist
			WHERE token = $1
			  AND expires_at > NOW()
		)
	`,

	/**
	 * Purge les entrées expirées de la blacklist
	 */
	CleanExpiredBlacklist: `
		DELETE FROM auth_refresh_blacklist
		WHERE expires_at <= NOW()
	`,
}
