package queries

// DossierQueries regroupe les requêtes SQL du registre des dossiers
var DossierQueries = struct {
	InsertUtilisateur string
	InsertPatient     string
	InsertDossier     string
	GetByDossierID    string
	GetByPatientNom   string
	GetByNSS          string
	UpdatePatient     string
	UpdateQRCodePath  string
	DeleteDossier     string
	ExistsNSS         string
	ExistsMedecin     string
}{
	/**
	 * Crée le compte patient (toujours role=patient, dans la transaction)
	 * Paramètres: $1=id, $2=email, $3=password_hash, $4=nom, $5=prenoms, $6=telephone
	 */
	InsertUtilisateur: `
		INSERT INTO comptes_utilisateur (id, email, password_hash, role, nom, prenoms, telephone)
		VALUES ($1, $2, $3, 'patient', $4, $5, $6)
	`,

	/**
	 * Crée la fiche administrative du patient
	 * Paramètres: $1=id, $2=utilisateur_id, $3=nss, $4=date_naissance,
	 *             $5=sexe, $6=adresse, $7=medecin_traitant_id
	 */
	InsertPatient: `
		INSERT INTO dossier_patient (id, utilisateur_id, nss, date_naissance, sexe, adresse, medecin_traitant_id)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7)
	`,

	/**
	 * Crée le dossier médical (QR écrit après commit)
	 * Paramètres: $1=id, $2=patient_id
	 */
	InsertDossier: `
		INSERT INTO dossier_dossier (id, patient_id)
		VALUES ($1, $2)
		RETURNING created_at
	`,

	/**
	 * Vue complète d'un dossier par son identifiant
	 * Paramètres: $1 = dossier_id
	 */
	GetByDossierID: `
		SELECT
			d.id, d.qr_code_path, d.created_at,
			p.id, p.utilisateur_id, u.email, u.nom, u.prenoms,
			COALESCE(u.telephone, ''), p.nss,
			to_char(p.date_naissance, 'YYYY-MM-DD'), p.sexe,
			COALESCE(p.adresse, ''), p.medecin_traitant_id
		FROM dossier_dossier d
		JOIN dossier_patient p ON p.id = d.patient_id
		JOIN comptes_utilisateur u ON u.id = p.utilisateur_id
		WHERE d.id = $1
	`,

	/**
	 * Recherche par identifiant patient et nom exact
	 * Paramètres: $1 = patient_id, $2 = nom
	 */
	GetByPatientNom: `
		SELECT
			d.id, d.qr_code_path, d.created_at,
			p.id, p.utilisateur_id, u.email, u.nom, u.prenoms,
			COALESCE(u.telephone, ''), p.nss,
			to_char(p.date_naissance, 'YYYY-MM-DD'), p.sexe,
			COALESCE(p.adresse, ''), p.medecin_traitant_id
		FROM dossier_dossier d
		JOIN dossier_patient p ON p.id = d.patient_id
		JOIN comptes_utilisateur u ON u.id = p.utilisateur_id
		WHERE p.id = $1 AND u.nom = $2
	`,

	/**
	 * Recherche par numéro de sécurité sociale exact
	 * Paramètres: $1 = nss
	 */
	GetByNSS: `
		SELECT
			d.id, d.qr_code_path, d.created_at,
			p.id, p.utilisateur_id, u.email, u.nom, u.prenoms,
			COALESCE(u.telephone, ''), p.nss,
			to_char(p.date_naissance, 'YYYY-MM-DD'), p.sexe,
			COALESCE(p.adresse, ''), p.medecin_traitant_id
		FROM dossier_dossier d
		JOIN dossier_patient p ON p.id = d.patient_id
		JOIN comptes_utilisateur u ON u.id = p.utilisateur_id
		WHERE p.nss = $1
	`,

	/**
	 * Mise à jour partielle de la fiche patient et de son compte
	 * Paramètres: $1=patient_id, $2=nom, $3=prenoms, $4=telephone,
	 *             $5=nss, $6=date_naissance, $7=sexe, $8=adresse, $9=medecin_traitant_id
	 */
	UpdatePatient: `
		WITH patient_maj AS (
			UPDATE dossier_patient SET
				nss = COALESCE($5, nss),
				date_naissance = COALESCE($6::date, date_naissance),
				sexe = COALESCE($7, sexe),
				adresse = COALESCE($8, adresse),
				medecin_traitant_id = COALESCE($9, medecin_traitant_id),
				updated_at = NOW()
			WHERE id = $1
			RETURNING utilisateur_id
		)
		UPDATE comptes_utilisateur u SET
			nom = COALESCE($2, u.nom),
			prenoms = COALESCE($3, u.prenoms),
			telephone = COALESCE($4, u.telephone),
			updated_at = NOW()
		FROM patient_maj
		WHERE u.id = patient_maj.utilisateur_id
	`,

	/**
	 * Enregistre (ou répare) le chemin du QR code d'un dossier
	 * Paramètres: $1=dossier_id, $2=qr_code_path
	 */
	UpdateQRCodePath: `
		UPDATE dossier_dossier SET
			qr_code_path = $2,
			updated_at = NOW()
		WHERE id = $1
	`,

	/**
	 * Supprime le compte patient : fiche et dossier suivent en cascade
	 * Paramètres: $1 = dossier_id
	 */
	DeleteDossier: `
		DELETE FROM comptes_utilisateur
		WHERE id = (
			SELECT p.utilisateur_id
			FROM dossier_dossier d
			JOIN dossier_patient p ON p.id = d.patient_id
			WHERE d.id = $1
		)
	`,

	/**
	 * Vérifie l'unicité d'un NSS
	 * Paramètres: $1 = nss
	 */
	ExistsNSS: `
		SELECT EXISTS (SELECT 1 FROM dossier_patient WHERE nss = $1)
	`,

	/**
	 * Vérifie qu'un profil technique existe et correspond à un médecin
	 * Paramètres: $1 = profil_technique_id
	 */
	ExistsMedecin: `
		SELECT EXISTS (
			SELECT 1 FROM comptes_profil_technique
			WHERE id = $1 AND role_metier = 'medecin'
		)
	`,
}
