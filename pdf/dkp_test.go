package pdf

import (
	"bytes"
	"testing"
	"time"

	"car_dealership_api/models"

	"github.com/stretchr/testify/assert"
)

func sampleDKP() *models.DKP {
	return &models.DKP{
		DKPID:         1,
		AppointmentID: 1,
		Place:         "г. Москва, ул. Башенная, д. 11к9",
		Date:          "2026-01-15",
		OwnerFullname: "Петров Петр Петрович",
		BuyerFullname: "Иванов Иван Иванович",
		VIN:           "ABC123",
		CarBrandModel: "Toyota Camry",
		CarYear:       2021,
		BodyNumber:    "Легковой",
		Color:         "Черный",
		Price:         25000,
		Copies:        2,
		CreatedAt:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderDKPProducesPDF(t *testing.T) {
	b, err := RenderDKP(sampleDKP())
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
	assert.Greater(t, len(b), 500)
}

// The Cyrillic text needs the embedded face; the core PDF fonts would emit
// mojibake (or fail outright without a codepage map on disk).
func TestRenderDKPEmbedsCyrillicFont(t *testing.T) {
	b, err := RenderDKP(sampleDKP())
	assert.NoError(t, err)
	assert.True(t, bytes.Contains(b, []byte("utf8dejavu")))
	assert.True(t, bytes.Contains(b, []byte("/Encoding /Identity-H")))
	assert.False(t, bytes.Contains(b, []byte("WinAnsiEncoding")))
}

func TestRenderDKPIsDeterministic(t *testing.T) {
	first, err := RenderDKP(sampleDKP())
	assert.NoError(t, err)
	second, err := RenderDKP(sampleDKP())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}
