package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "BEM ALI", site.Institutional.Brand.Name)
	assert.Len(t, site.Institutional.Services, 3)
	assert.Len(t, site.Personal.Services, 8)
	assert.NotEmpty(t, site.Institutional.FallbackTagline)
	assert.NotEmpty(t, site.Personal.FallbackTagline)
	assert.NotEqual(t, site.Institutional.FallbackTagline, site.Personal.FallbackTagline)

	_, ok := site.Institutional.Service("casal")
	assert.True(t, ok)
	_, ok = site.Institutional.Service("psicologia")
	assert.True(t, ok)
}

func TestProfileFor(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Same(t, &site.Personal, site.ProfileFor(true))
	assert.Same(t, &site.Institutional, site.ProfileFor(false))
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	site, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "BEM ALI", site.Institutional.Brand.Name)
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := []byte(`
institutional:
  brand: {name: Clinic}
  services:
    - {id: a, title: A}
personal:
  brand: {name: Person}
  services:
    - {id: b, title: B}
    - {id: c, title: C}
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Clinic", site.Institutional.Brand.Name)
	assert.Len(t, site.Personal.Services, 2)
	assert.Empty(t, site.Institutional.Team)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no name", "institutional: {services: [{id: a}]}\npersonal: {brand: {name: P}, services: [{id: b}]}"},
		{"no services", "institutional: {brand: {name: I}}\npersonal: {brand: {name: P}, services: [{id: b}]}"},
		{"empty id", "institutional: {brand: {name: I}, services: [{title: x}]}\npersonal: {brand: {name: P}, services: [{id: b}]}"},
		{"duplicate id", "institutional: {brand: {name: I}, services: [{id: a}, {id: a}]}\npersonal: {brand: {name: P}, services: [{id: b}]}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestHasDetail(t *testing.T) {
	assert.False(t, ServiceEntry{}.HasDetail())
	assert.False(t, ServiceEntry{Detail: &ServiceDetail{}}.HasDetail())
	assert.True(t, ServiceEntry{Detail: &ServiceDetail{Steps: []string{"x"}}}.HasDetail())

	assert.False(t, TeamMember{}.HasDetail())
	assert.True(t, TeamMember{Detail: &MemberDetail{Approach: "TCC"}}.HasDetail())
}
