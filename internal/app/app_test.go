package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/bookingledger/internal/config"
	"github.com/GlebRadaev/bookingledger/pkg/cache"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestNew() {
	s.NotNil(s.app.errCh)
	s.False(s.app.ready)
}

func (s *ApplicationSuite) TestGetCache_InMemoryWithoutRedis() {
	c, err := getCache(context.Background(), &config.Config{})

	s.Require().NoError(err)
	s.IsType(&cache.InMemoryCache{}, c)
}

func (s *ApplicationSuite) TestGetPgxpool_BadDSN() {
	_, err := getPgxpool(context.Background(), &config.Config{Database: "postgres://%zz"})

	s.Error(err)
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}
