package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/udisondev/botloadout/internal/data"
	"github.com/udisondev/botloadout/internal/testutil"
)

// CatalogRepositorySuite — интеграционные тесты каталога на реальном PostgreSQL.
type CatalogRepositorySuite struct {
	suite.Suite
	ctx  context.Context
	db   *DB
	repo *CatalogRepository
}

func (s *CatalogRepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	dsn := testutil.PostgresDSN(s.T())

	version, err := RunMigrations(s.ctx, dsn)
	s.Require().NoError(err)
	s.Equal(int64(1), version)

	// Second run applies nothing and reports the same version
	again, err := RunMigrations(s.ctx, dsn)
	s.Require().NoError(err)
	s.Equal(version, again)

	s.db, err = New(s.ctx, dsn)
	s.Require().NoError(err)
	s.repo = NewCatalogRepository(s.db.Pool())
}

func (s *CatalogRepositorySuite) SetupTest() {
	_, err := s.db.Pool().Exec(s.ctx, "TRUNCATE TABLE item_templates, role_inventories")
	s.Require().NoError(err)
}

func (s *CatalogRepositorySuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *CatalogRepositorySuite) TestCatalogRoundTrip() {
	want := data.FixtureCatalog()
	s.Require().NoError(s.repo.SaveTemplates(s.ctx, want.Templates()))

	got, err := s.repo.LoadCatalog(s.ctx)
	s.Require().NoError(err)

	s.Equal(want.IDs(), got.IDs())
	for _, id := range want.IDs() {
		w, _ := want.Template(id)
		g, ok := got.Template(id)
		s.Require().True(ok, id)
		s.Equal(w, g, id)
	}
}

func (s *CatalogRepositorySuite) TestSaveTemplatesUpserts() {
	tpls := data.FixtureTemplates()
	s.Require().NoError(s.repo.SaveTemplates(s.ctx, tpls))

	for _, tpl := range tpls {
		if tpl.ID == data.FixtureMedkit {
			tpl.MaxResource = 400
		}
	}
	s.Require().NoError(s.repo.SaveTemplates(s.ctx, tpls))

	got, err := s.repo.LoadCatalog(s.ctx)
	s.Require().NoError(err)
	s.Equal(len(tpls), got.Len())

	medkit, ok := got.Template(data.FixtureMedkit)
	s.Require().True(ok)
	s.Equal(400, medkit.MaxResource)
}

func (s *CatalogRepositorySuite) TestRoleRoundTrip() {
	assault := data.FixtureRole()
	scav := data.FixtureRole()
	scav.Role = "scav"
	scav.Blacklist = []string{"Meds"}

	s.Require().NoError(s.repo.SaveRole(s.ctx, assault))
	s.Require().NoError(s.repo.SaveRole(s.ctx, scav))

	got, err := s.repo.LoadRole(s.ctx, "assault")
	s.Require().NoError(err)
	s.Equal(assault, got)

	roles, err := s.repo.ListRoles(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"assault", "scav"}, roles)
}

func (s *CatalogRepositorySuite) TestLoadRoleNotFound() {
	_, err := s.repo.LoadRole(s.ctx, "boss")
	s.ErrorIs(err, ErrRoleNotFound)
}

func (s *CatalogRepositorySuite) TestEmptyCatalog() {
	got, err := s.repo.LoadCatalog(s.ctx)
	s.Require().NoError(err)
	s.Zero(got.Len())

	s.NoError(s.repo.SaveTemplates(s.ctx, nil))
}

func TestCatalogRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(CatalogRepositorySuite))
}
