package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/statbot/internal/models"
	stateRepo "github.com/KirkDiggler/statbot/internal/repositories/state"
	stateMocks "github.com/KirkDiggler/statbot/internal/repositories/state/mocks"
	"github.com/KirkDiggler/statbot/internal/services/identity"
	"github.com/KirkDiggler/statbot/internal/services/stats"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PersistenceServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockStateRepo *stateMocks.MockRepository
	ctx           context.Context

	identityService identity.Service
	statsService    stats.Service
	service         Service

	testGameID string
	testUserID string
}

func (s *PersistenceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStateRepo = stateMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	s.identityService, s.statsService = s.newServices()

	svc, err := New(&Config{
		StateRepo:       s.mockStateRepo,
		StatsService:    s.statsService,
		IdentityService: s.identityService,
	})
	s.Require().NoError(err)
	s.service = svc

	s.testGameID = "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"
	s.testUserID = "test-user-id"
}

func (s *PersistenceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPersistenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersistenceServiceTestSuite))
}

func (s *PersistenceServiceTestSuite) newServices() (identity.Service, stats.Service) {
	identitySvc, err := identity.New(&identity.Config{})
	s.Require().NoError(err)

	statsSvc, err := stats.New(&stats.Config{IdentityService: identitySvc})
	s.Require().NoError(err)

	return identitySvc, statsSvc
}

func (s *PersistenceServiceTestSuite) seed(identitySvc identity.Service, statsSvc stats.Service) {
	_, err := statsSvc.ApplySnapshot(s.ctx, &stats.ApplySnapshotInput{
		Snapshot: &models.Snapshot{GameID: s.testGameID, Counters: models.Counters{TotalEarned: 100, TimePlayed: 90}},
	})
	s.Require().NoError(err)
	_, err = statsSvc.ApplySnapshot(s.ctx, &stats.ApplySnapshotInput{
		Snapshot: &models.Snapshot{GameID: s.testGameID, Counters: models.Counters{TotalEarned: 150, TimePlayed: 120}},
	})
	s.Require().NoError(err)
	_, err = identitySvc.Link(s.ctx, &identity.LinkInput{UserID: s.testUserID, GameID: s.testGameID})
	s.Require().NoError(err)
}

func (s *PersistenceServiceTestSuite) TestSaveThenLoadRoundTrip() {
	repo, err := stateRepo.NewFile(&stateRepo.FileConfig{Dir: s.T().TempDir()})
	s.Require().NoError(err)

	srcIdentity, srcStats := s.newServices()
	s.seed(srcIdentity, srcStats)

	src, err := New(&Config{StateRepo: repo, StatsService: srcStats, IdentityService: srcIdentity})
	s.Require().NoError(err)

	saved, err := src.Save(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, saved.Players)
	s.Equal(1, saved.Links)

	dstIdentity, dstStats := s.newServices()
	dst, err := New(&Config{StateRepo: repo, StatsService: dstStats, IdentityService: dstIdentity})
	s.Require().NoError(err)

	loaded, err := dst.Load(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{stateRepo.DocumentTotals, stateRepo.DocumentPlayers, stateRepo.DocumentLinks}, loaded.Loaded)
	s.Empty(loaded.Failed)

	srcState, err := srcStats.Export(s.ctx)
	s.Require().NoError(err)
	dstState, err := dstStats.Export(s.ctx)
	s.Require().NoError(err)
	s.Equal(srcState, dstState)

	srcLinks, err := srcIdentity.Export(s.ctx)
	s.Require().NoError(err)
	dstLinks, err := dstIdentity.Export(s.ctx)
	s.Require().NoError(err)
	s.Equal(srcLinks, dstLinks)
}

func (s *PersistenceServiceTestSuite) TestLoadTreatsNullPlayersAsReset() {
	dir := s.T().TempDir()
	repo, err := stateRepo.NewFile(&stateRepo.FileConfig{Dir: dir})
	s.Require().NoError(err)

	players := `{"` + s.testGameID + `": null}`
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "playersValues.json"), []byte(players), 0o644))

	svc, err := New(&Config{StateRepo: repo, StatsService: s.statsService, IdentityService: s.identityService})
	s.Require().NoError(err)

	loaded, err := svc.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{stateRepo.DocumentPlayers}, loaded.Loaded)

	applied, err := s.statsService.ApplySnapshot(s.ctx, &stats.ApplySnapshotInput{
		Snapshot: &models.Snapshot{GameID: s.testGameID, Counters: models.Counters{TotalEarned: 40}},
	})
	s.Require().NoError(err)
	s.True(applied.FirstSeen)

	totals, err := s.statsService.GetGlobalTotals(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), totals.Totals.TotalPlayers)
	s.Equal(int64(40), totals.Totals.TotalEarned)
}

func (s *PersistenceServiceTestSuite) TestSaveStopsAtFirstFailure() {
	writeErr := errors.New("disk full")

	s.mockStateRepo.EXPECT().SaveTotals(s.ctx, gomock.Any()).Return(nil)
	s.mockStateRepo.EXPECT().SavePlayers(s.ctx, gomock.Any()).Return(writeErr)

	_, err := s.service.Save(s.ctx)
	s.Require().Error(err)
	s.ErrorIs(err, writeErr)
	s.Contains(err.Error(), "failed to save players")
}

func (s *PersistenceServiceTestSuite) TestLoadNothingSaved() {
	s.seed(s.identityService, s.statsService)
	before, err := s.statsService.Export(s.ctx)
	s.Require().NoError(err)

	s.mockStateRepo.EXPECT().GetTotals(s.ctx).Return(nil, stateRepo.ErrNotFound)
	s.mockStateRepo.EXPECT().GetPlayers(s.ctx).Return(nil, stateRepo.ErrNotFound)
	s.mockStateRepo.EXPECT().GetLinks(s.ctx).Return(nil, stateRepo.ErrNotFound)

	output, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.True(output.Empty())
	s.Empty(output.Failed)

	after, err := s.statsService.Export(s.ctx)
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *PersistenceServiceTestSuite) TestLoadKeepsStateForCorruptDocuments() {
	s.seed(s.identityService, s.statsService)
	before, err := s.statsService.Export(s.ctx)
	s.Require().NoError(err)

	s.mockStateRepo.EXPECT().GetTotals(s.ctx).Return(nil, stateRepo.ErrCorrupt)
	s.mockStateRepo.EXPECT().GetPlayers(s.ctx).Return(nil, stateRepo.ErrCorrupt)
	s.mockStateRepo.EXPECT().GetLinks(s.ctx).Return(&stateRepo.GetLinksOutput{
		Links: map[string]string{"other-user": "ZYXWVUTSRQPONMLKJIHGFEDCBA543210"},
	}, nil)

	output, err := s.service.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{stateRepo.DocumentLinks}, output.Loaded)
	s.Equal([]string{stateRepo.DocumentTotals, stateRepo.DocumentPlayers}, output.Failed)

	after, err := s.statsService.Export(s.ctx)
	s.Require().NoError(err)
	s.Equal(before, after)

	_, err = s.identityService.Resolve(s.ctx, &identity.ResolveInput{UserID: s.testUserID})
	s.ErrorIs(err, identity.ErrNotLinked)
}

func (s *PersistenceServiceTestSuite) TestDelete() {
	s.mockStateRepo.EXPECT().DeleteAll(s.ctx).Return(nil)
	s.NoError(s.service.Delete(s.ctx))

	s.mockStateRepo.EXPECT().DeleteAll(s.ctx).Return(stateRepo.ErrNotFound)
	s.ErrorIs(s.service.Delete(s.ctx), ErrNothingSaved)
}
