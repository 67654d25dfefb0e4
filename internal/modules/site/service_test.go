package site

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewService(NewMemoryContactRepository(), NewMemoryPromoRepository(), NewMemoryOfficeRepository())
}

func TestContactFallsBackToDefault(t *testing.T) {
	svc := newTestService()

	c, err := svc.Contact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultContact(), c)
}

func TestEnsureDefaultsSeedsOnce(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.EnsureDefaults(ctx))

	custom := ContactInfo{Address: "New Address", Phone: "+1 555 0100", Email: "hello@example.com"}
	_, err := svc.SetContact(ctx, custom)
	require.NoError(t, err)

	// A second call must not clobber the stored document.
	require.NoError(t, svc.EnsureDefaults(ctx))
	c, err := svc.Contact(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, c)
}

func TestPromoDefaultsDisabled(t *testing.T) {
	svc := newTestService()

	p, err := svc.Promo(context.Background())
	require.NoError(t, err)
	assert.False(t, p.Enabled)
	assert.Empty(t, p.Text)
}

func TestSetPromoRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SetPromo(ctx, PromoHeader{Text: "Festive sale", Enabled: true})
	require.NoError(t, err)

	p, err := svc.Promo(ctx)
	require.NoError(t, err)
	assert.True(t, p.Enabled)
	assert.Equal(t, "Festive sale", p.Text)
}

func TestOfficesHeadquartersFirstThenCountry(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SaveOffice(ctx, "", OfficeRequest{City: "Dubai", Country: "UAE"})
	require.NoError(t, err)
	_, err = svc.SaveOffice(ctx, "", OfficeRequest{City: "London", Country: "UK"})
	require.NoError(t, err)
	_, err = svc.SaveOffice(ctx, "", OfficeRequest{City: "Mumbai", Country: "India", IsHeadquarters: true})
	require.NoError(t, err)

	offices, err := svc.ListOffices(ctx)
	require.NoError(t, err)
	require.Len(t, offices, 3)
	assert.Equal(t, "Mumbai", offices[0].City)
	assert.Equal(t, "Dubai", offices[1].City)
	assert.Equal(t, "London", offices[2].City)
}

func TestSaveOfficeRequiresCity(t *testing.T) {
	svc := newTestService()

	_, err := svc.SaveOffice(context.Background(), "", OfficeRequest{City: "  ", Country: "India"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}
