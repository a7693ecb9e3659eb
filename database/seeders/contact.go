package seeders

import (
	"context"
	"errors"

	"rehber.link/configs"
	"rehber.link/configs/configslog"
	"rehber.link/models"
	"rehber.link/repositories"
	"rehber.link/services"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SampleContacts boş bir rehbere eklenen örnek kayıtlardır.
func SampleContacts() []models.ContactInput {
	return []models.ContactInput{
		{
			ContactType: models.ContactTypePerson,
			Name:        "Ayşe Nur Yılmaz",
			Description: "Rehberin **örnek** kişi kaydı.",
			City:        "İstanbul",
			Country:     "TR",
			Email:       "ayse@example.com",
		},
		{
			ContactType: models.ContactTypePerson,
			Name:        "Mehmet Demir",
			City:        "Ankara",
			Country:     "TR",
			Phone:       "+90 312 000 00 00",
		},
		{
			ContactType:  models.ContactTypeCommercial,
			Name:         "Örnek Yazılım A.Ş.",
			Description:  "Yazılım ve danışmanlık hizmetleri.",
			AddressLine1: "Teknopark Cad. No:1",
			City:         "İzmir",
			Code:         "35430",
			Country:      "TR",
			Website:      "https://example.com",
		},
		{
			ContactType: models.ContactTypeEducational,
			Name:        "Örnek Üniversitesi",
			City:        "Eskişehir",
			Country:     "TR",
		},
		{
			ContactType: models.ContactTypeNonprofit,
			Name:        "Örnek Vakfı",
			Country:     "TR",
		},
		{
			ContactType: models.ContactTypeGovernmental,
			Name:        "Örnek Belediyesi",
			Country:     "TR",
		},
	}
}

// SeedContacts tablo boşsa örnek kayıtları servis üzerinden ekler; böylece
// açıklama HTML'i, ad alanları ve slug normal kayıt akışıyla üretilir.
func SeedContacts(db *gorm.DB, cfg configs.ContactConfig) error {
	ctx := context.Background()
	repo := repositories.NewContactRepository(db)

	count, err := repo.Count(ctx, repositories.AllContacts())
	if err != nil {
		configslog.Log.Error("Rehber kayıtları sayılamadı", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Infof("Rehberde zaten %d kayıt var, örnek kayıt eklenmeyecek.", count)
		return nil
	}

	service := services.NewContactService(repo, cfg)
	errorOccurred := false
	for _, input := range SampleContacts() {
		contact, err := service.CreateContact(ctx, input)
		if err != nil {
			configslog.Log.Error("Örnek kayıt oluşturulamadı", zap.String("name", input.Name), zap.Error(err))
			errorOccurred = true
			continue
		}
		configslog.SLog.Infof("Örnek kayıt '%s' oluşturuldu (slug: %s).", contact.Name, contact.Slug)
	}

	if errorOccurred {
		return errors.New("örnek kayıtlar eklenirken en az bir hata oluştu")
	}
	return nil
}
