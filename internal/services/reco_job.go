package services

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/recolab/reco-backend/internal/apierr"
	"github.com/recolab/reco-backend/internal/logger"
)

// RecoJobConfig describes the external recomputation process. The defaults
// reproduce the reco-ml batch invocation.
type RecoJobConfig struct {
	ComposeBin     string
	ComposeService string
	// PerUser is the number of recommendations the job emits per user (--n).
	PerUser int
	// Neighbors is the CF neighborhood size (--k).
	Neighbors int
	// AlgoVersion is the label the job stamps on every row it writes (--algo).
	AlgoVersion string
	// Timeout bounds one run; zero means wait indefinitely.
	Timeout time.Duration
	// SingleFlight coalesces concurrent recomputes into one run. Off by
	// default: the baseline behavior is that overlapping recomputes launch
	// overlapping jobs and the last writer wins.
	SingleFlight bool
}

func DefaultRecoJobConfig() RecoJobConfig {
	return RecoJobConfig{
		ComposeBin:     "docker",
		ComposeService: "reco-ml",
		PerUser:        20,
		Neighbors:      50,
		AlgoVersion:    "hybrid_usercf_pop",
	}
}

// JobProcess is one launched (or launchable) external run.
type JobProcess interface {
	Start() error
	// Wait blocks until the process exits and reports the exit code. The
	// error is reserved for wait mechanics failing; a non-zero exit is
	// (code, nil).
	Wait() (int, error)
}

// JobLauncher is the seam between the orchestrator and the operating system.
// Tests swap in a fake so no subprocess is ever spawned.
type JobLauncher interface {
	Launch(ctx context.Context, mode string) JobProcess
}

type execLauncher struct {
	log *logger.Logger
	cfg RecoJobConfig
}

func NewExecJobLauncher(log *logger.Logger, cfg RecoJobConfig) JobLauncher {
	return &execLauncher{
		log: log.With("service", "ExecJobLauncher"),
		cfg: cfg,
	}
}

func (l *execLauncher) command(mode string) (string, []string) {
	args := []string{
		"compose", "run", "--rm",
		l.cfg.ComposeService,
		"python", "-m", "jobs.run_reco",
		"--mode", mode,
		"--n", strconv.Itoa(l.cfg.PerUser),
		"--k", strconv.Itoa(l.cfg.Neighbors),
		"--algo", l.cfg.AlgoVersion,
	}
	return l.cfg.ComposeBin, args
}

func (l *execLauncher) Launch(ctx context.Context, mode string) JobProcess {
	bin, args := l.command(mode)
	l.log.Info("Launching recommendation job", "bin", bin, "mode", mode, "algo", l.cfg.AlgoVersion)
	cmd := exec.CommandContext(ctx, bin, args...)
	// The job writes its results to shared storage; its output is log-only,
	// so stderr is merged into stdout and passed through.
	cmd.Stdout = os.Stdout
	cmd.Stderr = cmd.Stdout
	return &execProcess{cmd: cmd}
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Start() error {
	return p.cmd.Start()
}

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if p.cmd.ProcessState != nil {
		return p.cmd.ProcessState.ExitCode(), nil
	}
	return -1, err
}

type RecoJobService interface {
	RunRecommendationJob(ctx context.Context, mode string) error
}

type recoJobService struct {
	log      *logger.Logger
	launcher JobLauncher
	timeout  time.Duration
	flight   *singleflight.Group
}

func NewRecoJobService(log *logger.Logger, launcher JobLauncher, cfg RecoJobConfig) RecoJobService {
	svc := &recoJobService{
		log:      log.With("service", "RecoJobService"),
		launcher: launcher,
		timeout:  cfg.Timeout,
	}
	if cfg.SingleFlight {
		svc.flight = &singleflight.Group{}
	}
	return svc
}

// RunRecommendationJob launches the external recomputation and blocks until
// it terminates. Outcomes: non-zero exit is a JobFailure carrying the exit
// code, a cancelled wait is a JobInterrupted, and any failure to start or
// wait is a JobExecutionError wrapping the cause.
func (s *recoJobService) RunRecommendationJob(ctx context.Context, mode string) error {
	if s.flight == nil {
		return s.runOnce(ctx, mode)
	}
	_, err, shared := s.flight.Do("reco-job:"+mode, func() (interface{}, error) {
		return nil, s.runOnce(ctx, mode)
	})
	if shared {
		s.log.Info("Recommendation job run was coalesced with a concurrent caller", "mode", mode)
	}
	return err
}

func (s *recoJobService) runOnce(ctx context.Context, mode string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	process := s.launcher.Launch(ctx, mode)
	if err := process.Start(); err != nil {
		return apierr.JobExecutionError(fmt.Errorf("failed to start reco job: %w", err))
	}

	exitCode, err := process.Wait()
	if err != nil {
		if ctx.Err() != nil {
			return apierr.JobInterrupted(fmt.Errorf("reco job interrupted: %w", err))
		}
		return apierr.JobExecutionError(fmt.Errorf("failed to wait for reco job: %w", err))
	}
	if ctx.Err() != nil {
		return apierr.JobInterrupted(fmt.Errorf("reco job interrupted: %w", ctx.Err()))
	}
	if exitCode != 0 {
		return apierr.JobFailure(exitCode, fmt.Errorf("reco job failed with exit code %d", exitCode))
	}

	s.log.Info("Recommendation job finished", "mode", mode, "duration", time.Since(started).String())
	return nil
}
