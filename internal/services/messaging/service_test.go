package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/statbot/internal/models"
	"github.com/KirkDiggler/statbot/internal/services/identity"
	"github.com/KirkDiggler/statbot/internal/services/persistence"
	"github.com/KirkDiggler/statbot/internal/services/stats"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service Service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{})
	s.Require().NoError(err)
	s.service = svc
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestFormatTime() {
	cases := map[int64]string{
		0:    "0s",
		45:   "45s",
		90:   "1m 30s",
		3600: "1h",
		3661: "1h 1m 1s",
		7260: "2h 1m",
		-90:  "-1m 30s",
	}
	for seconds, expected := range cases {
		s.Equal(expected, FormatTime(seconds), "seconds=%d", seconds)
	}
}

func (s *MessagingServiceTestSuite) TestGetStatsMessage() {
	counters := models.Counters{
		TotalEarned:     150,
		TotalSpent:      20,
		ObjectsPlaced:   3,
		TimePlayed:      90,
		SeedsPlanted:    4,
		PlantsHarvested: 2,
		GramsPressed:    7,
		OzsSold:         1,
		PlantsKilled:    0,
	}
	body := "Total Money Earned: 150\n" +
		"Total $ Spent: 20\n" +
		"Total Objects Placed: 3\n" +
		"Total Time Played: 1m 30s\n" +
		"Total Seeds Planted: 4\n" +
		"Total Plants Harvested: 2\n" +
		"Total Grams Pressed: 7\n" +
		"Total Ozs Sold: 1\n" +
		"Total Plants Killed: 0"

	output, err := s.service.GetStatsMessage(s.ctx, &GetStatsMessageInput{Kind: StatsKindPlayer, Counters: counters})
	s.Require().NoError(err)
	s.Equal(body, output.Message)

	output, err = s.service.GetStatsMessage(s.ctx, &GetStatsMessageInput{Kind: StatsKindGlobal, Counters: counters})
	s.Require().NoError(err)
	s.Equal("Global Stats\n"+body, output.Message)

	output, err = s.service.GetStatsMessage(s.ctx, &GetStatsMessageInput{Kind: StatsKindReport, GameID: "abc", Counters: counters})
	s.Require().NoError(err)
	s.Equal("Unique ID: abc\n"+body, output.Message)
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	cases := []struct {
		cmd      Command
		err      error
		expected string
	}{
		{CommandLink, identity.ErrInvalidGameID, "Please provide a valid Game ID!"},
		{CommandLink, identity.ErrAlreadyLinked, "You already have a Game ID linked. Use !unlink to unlink your current Game ID."},
		{CommandUnlink, identity.ErrNotLinked, "You don't have a linked Game ID."},
		{CommandIDLookup, identity.ErrNotLinked, MessageNoIDFound},
		{CommandStats, identity.ErrNotLinked, MessageAccountNotLinked},
		{CommandResetStats, identity.ErrNotLinked, MessageAccountNotLinked},
		{CommandStats, stats.ErrStatsNotFound, "No saved stats found for Game ID."},
		{CommandResetID, stats.ErrStatsNotFound, "ID does not have stats."},
		{CommandLoad, persistence.ErrNothingSaved, "No saved data found."},
		{CommandSave, errors.New("disk full"), "Save failed, check the bot logs."},
		{CommandGlobalStats, errors.New("boom"), MessageGenericFailure},
	}

	for _, tc := range cases {
		output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
			Command: tc.cmd,
			Err:     fmt.Errorf("wrapped: %w", tc.err),
		})
		s.Require().NoError(err)
		s.Equal(tc.expected, output.Message, "%s: %v", tc.cmd, tc.err)
	}
}
