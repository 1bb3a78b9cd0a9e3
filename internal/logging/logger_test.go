package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/logandonley/fontlist/internal/config"
	"github.com/logandonley/fontlist/internal/logging"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = new(bytes.Buffer)
	})

	It("should write JSON records", func() {
		logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: buf})
		Expect(err).NotTo(HaveOccurred())

		logger.Info("font catalog opened", slog.Int("faces", 2), logging.Error(errors.New("boom")))

		var record map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &record)).To(Succeed())
		Expect(record).To(HaveKeyWithValue("msg", "font catalog opened"))
		Expect(record).To(HaveKeyWithValue("faces", BeNumerically("==", 2)))
		Expect(record).To(HaveKeyWithValue("error", "boom"))
	})

	It("should filter records below the configured level", func() {
		logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: buf})
		Expect(err).NotTo(HaveOccurred())

		logger.Info("hidden")
		logger.Warn("shown")
		Expect(buf.String()).NotTo(ContainSubstring("hidden"))
		Expect(buf.String()).To(ContainSubstring("shown"))
	})

	It("should reject unknown formats and levels", func() {
		_, err := logging.New(logging.Options{Format: "xml"})
		Expect(err).To(MatchError(ContainSubstring("log format")))

		_, err = logging.New(logging.Options{Level: "loud"})
		Expect(err).To(MatchError(ContainSubstring("log level")))
	})

	It("should build a logger from config", func() {
		cfg := config.Default()
		cfg.Logging.Format = "json"

		logger, err := logging.NewFromConfig(&cfg, buf)
		Expect(err).NotTo(HaveOccurred())
		logger.Info("ready")
		Expect(buf.String()).To(HavePrefix("{"))
	})

	It("should discard everything with the nop logger", func() {
		Expect(logging.NewNop().Enabled(context.Background(), slog.LevelError)).To(BeFalse())
	})
})
