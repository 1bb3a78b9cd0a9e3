package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/logandonley/fontlist/internal/app"
	"github.com/logandonley/fontlist/pkg/fontlist"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("App", func() {
	var (
		application *app.App
		ctx         context.Context
	)

	BeforeEach(func() {
		var err error
		application, err = app.New(fontlist.NewStatic(
			fontlist.Face{Family: "Arial", Style: "Regular"},
			fontlist.Face{Family: "Arial", Style: "Bold"},
		), nil)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	It("should require a catalog", func() {
		_, err := app.New(nil, nil)
		Expect(err).To(HaveOccurred())
	})

	Describe("list_installed_fonts", func() {
		It("should be registered at startup", func() {
			Expect(application.Commands()).To(Equal([]string{app.ListInstalledFonts}))
		})

		It("should return every catalog entry", func() {
			result, err := application.Invoke(ctx, app.ListInstalledFonts, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(ConsistOf(
				fontlist.Font{Family: "Arial", Style: "Regular"},
				fontlist.Font{Family: "Arial", Style: "Bold"},
			))
		})

		It("should ignore arguments", func() {
			result, err := application.Invoke(ctx, app.ListInstalledFonts, json.RawMessage(`{"unused":true}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(HaveLen(2))
		})

		It("should return an empty list for an empty catalog", func() {
			empty, err := app.New(fontlist.NewStatic(), nil)
			Expect(err).NotTo(HaveOccurred())

			result, err := empty.Invoke(ctx, app.ListInstalledFonts, nil)
			Expect(err).NotTo(HaveOccurred())

			data, err := json.Marshal(result)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal("[]"))
		})
	})

	Describe("Registering commands", func() {
		It("should reject duplicates", func() {
			err := application.Register(app.ListInstalledFonts, func(context.Context, json.RawMessage) (any, error) {
				return nil, nil
			})
			Expect(errors.Is(err, app.ErrDuplicateCommand)).To(BeTrue())
		})

		It("should reject empty names and nil handlers", func() {
			Expect(application.Register("  ", func(context.Context, json.RawMessage) (any, error) { return nil, nil })).NotTo(Succeed())
			Expect(application.Register("noop", nil)).NotTo(Succeed())
		})

		It("should dispatch to registered handlers", func() {
			Expect(application.Register("echo", func(_ context.Context, args json.RawMessage) (any, error) {
				return string(args), nil
			})).To(Succeed())

			result, err := application.Invoke(ctx, "echo", json.RawMessage(`"hi"`))
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(`"hi"`))
			Expect(application.Commands()).To(Equal([]string{"echo", app.ListInstalledFonts}))
		})

		It("should wrap handler errors", func() {
			boom := errors.New("boom")
			Expect(application.Register("fail", func(context.Context, json.RawMessage) (any, error) {
				return nil, boom
			})).To(Succeed())

			_, err := application.Invoke(ctx, "fail", nil)
			Expect(err).To(MatchError(boom))
			Expect(err.Error()).To(ContainSubstring("running fail"))
		})
	})

	It("should allow registering while commands are invoked", func() {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				Expect(application.Register(fmt.Sprintf("cmd-%d", i), func(context.Context, json.RawMessage) (any, error) {
					return i, nil
				})).To(Succeed())
			}(i)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				_, err := application.Invoke(ctx, app.ListInstalledFonts, nil)
				Expect(err).NotTo(HaveOccurred())
				_ = application.Commands()
			}()
		}
		wg.Wait()

		Expect(application.Commands()).To(HaveLen(9))
	})

	It("should report unknown commands", func() {
		_, err := application.Invoke(ctx, "open_dialog", nil)
		Expect(errors.Is(err, app.ErrUnknownCommand)).To(BeTrue())
	})
})
