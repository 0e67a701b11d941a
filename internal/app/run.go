package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	if len(req.Argv) == 0 {
		return RunResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command to run is required")
	}
	setup, err := s.Setup(ctx, req.Setup)
	if err != nil {
		return RunResult{}, err
	}
	log.Ctx(ctx).Debug().Strs("argv", req.Argv).Msg("running command")
	code, err := s.Runner.Run(ctx, req.Argv, setup.Env.Environ())
	if err != nil {
		return RunResult{Setup: setup}, err
	}
	return RunResult{Setup: setup, ExitCode: code}, nil
}
