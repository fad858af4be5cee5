package snapshot

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/statbot/internal/models"
	"github.com/stretchr/testify/suite"
)

const testGameID = "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"

type ParserTestSuite struct {
	suite.Suite
	report string
}

func (s *ParserTestSuite) SetupTest() {
	s.report = "Game ID: " + testGameID + "\n" +
		"Total $ Earned: 100\n" +
		"Total $ Spent: 40\n" +
		"Total Objects Placed: 12\n" +
		"Total Time Played: 3661\n" +
		"Total Seeds Planted: 8\n" +
		"Total Plants Harvested: 6\n" +
		"Total Grams Pressed: 30\n" +
		"Total Ozs Sold: 2\n" +
		"Total Plants Killed: 1\n"
}

func TestParserTestSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

func (s *ParserTestSuite) TestValue() {
	s.Equal(testGameID, Value(s.report, LabelGameID))
	s.Equal("3661", Value(s.report, LabelTimePlayed))
	s.Equal("", Value(s.report, "Total Fish Caught"))
}

func (s *ParserTestSuite) TestValueTrimsAndReadsToEndOfText() {
	s.Equal("42", Value("Total $ Earned:   42  ", LabelEarned))
}

func (s *ParserTestSuite) TestValueRejectsMissingSeparator() {
	s.Equal("", Value("Total $ Earned=42\n", LabelEarned))
}

func (s *ParserTestSuite) TestValueFirstOccurrenceWins() {
	content := "Game ID: first\nGame ID: second\n"
	s.Equal("first", Value(content, LabelGameID))
}

func (s *ParserTestSuite) TestParse() {
	snap, err := Parse(s.report)
	s.Require().NoError(err)
	s.Equal(&models.Snapshot{
		GameID: testGameID,
		Counters: models.Counters{
			TotalEarned:     100,
			TotalSpent:      40,
			ObjectsPlaced:   12,
			TimePlayed:      3661,
			SeedsPlanted:    8,
			PlantsHarvested: 6,
			GramsPressed:    30,
			OzsSold:         2,
			PlantsKilled:    1,
		},
	}, snap)
}

func (s *ParserTestSuite) TestParseMissingGameID() {
	_, err := Parse("Total $ Earned: 100\n")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrMissingField))

	var parseErr *ParseError
	s.Require().True(errors.As(err, &parseErr))
	s.Equal(LabelGameID, parseErr.Label)
}

func (s *ParserTestSuite) TestParseMissingCounter() {
	content := "Game ID: " + testGameID + "\nTotal $ Earned: 100\n"
	_, err := Parse(content)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrMissingField))

	var parseErr *ParseError
	s.Require().True(errors.As(err, &parseErr))
	s.Equal(LabelSpent, parseErr.Label)
}

func (s *ParserTestSuite) TestParseInvalidNumber() {
	content := "Game ID: " + testGameID + "\nTotal $ Earned: 12abc\n"
	_, err := Parse(content)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrInvalidNumber))
	s.Contains(err.Error(), "12abc")
}

func (s *ParserTestSuite) TestFormatIsReadByParse() {
	snap, err := Parse(s.report)
	s.Require().NoError(err)

	s.Equal(s.report, Format(snap))

	reparsed, err := Parse(Format(snap))
	s.Require().NoError(err)
	s.Equal(snap, reparsed)
}

func (s *ParserTestSuite) TestGameIDFallsBackToUniqueID() {
	s.Equal(testGameID, GameID(s.report))
	s.Equal("legacy-id", GameID("Unique ID: legacy-id\nTotal Money Earned: 5\n"))
	s.Equal("", GameID("hello world"))
}
