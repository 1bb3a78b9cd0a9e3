package platform_test

import (
	"os"
	"path/filepath"

	"github.com/logandonley/fontlist/internal/platform"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Platform", func() {
	var (
		tempDir string
		manager platform.Manager
	)

	BeforeEach(func() {
		tempDir = GinkgoT().TempDir()

		// Set up environment for testing
		GinkgoT().Setenv("HOME", tempDir)
		GinkgoT().Setenv("XDG_DATA_HOME", "")
		GinkgoT().Setenv("XDG_DATA_DIRS", "")
	})

	Context("Linux Manager", func() {
		BeforeEach(func() {
			manager = platform.NewFor("linux")
		})

		It("should return correct font paths", func() {
			paths, err := manager.GetFontPaths()
			Expect(err).NotTo(HaveOccurred())

			Expect(paths.SystemDirs).To(Equal([]string{"/usr/share/fonts", "/usr/local/share/fonts"}))
			Expect(paths.UserDirs).To(Equal([]string{
				filepath.Join(tempDir, ".local/share/fonts"),
				filepath.Join(tempDir, ".fonts"),
			}))
		})

		It("should honour XDG directories without duplicates", func() {
			GinkgoT().Setenv("XDG_DATA_HOME", filepath.Join(tempDir, "data"))
			GinkgoT().Setenv("XDG_DATA_DIRS", "/usr/share:/opt/share:")

			paths, err := manager.GetFontPaths()
			Expect(err).NotTo(HaveOccurred())

			Expect(paths.SystemDirs).To(Equal([]string{"/usr/share/fonts", "/usr/local/share/fonts", "/opt/share/fonts"}))
			Expect(paths.UserDirs).To(ContainElement(filepath.Join(tempDir, "data", "fonts")))
		})

		It("should not create any directories", func() {
			_, err := manager.GetFontPaths()
			Expect(err).NotTo(HaveOccurred())

			_, err = os.Stat(filepath.Join(tempDir, ".local"))
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})

	Context("Darwin Manager", func() {
		BeforeEach(func() {
			manager = platform.NewFor("darwin")
		})

		It("should return correct font paths", func() {
			paths, err := manager.GetFontPaths()
			Expect(err).NotTo(HaveOccurred())

			Expect(paths.SystemDirs).To(ContainElements("/System/Library/Fonts", "/Library/Fonts"))
			Expect(paths.UserDirs).To(ConsistOf(ContainSubstring("Library/Fonts")))
		})
	})

	Context("Windows Manager", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("WINDIR", "")
			GinkgoT().Setenv("LOCALAPPDATA", "")
			manager = platform.NewFor("windows")
		})

		It("should fall back to the default Windows directory", func() {
			paths, err := manager.GetFontPaths()
			Expect(err).NotTo(HaveOccurred())

			Expect(paths.SystemDirs).To(ConsistOf(ContainSubstring("Fonts")))
			Expect(paths.UserDirs).To(ConsistOf(ContainSubstring(filepath.Join("Microsoft", "Windows", "Fonts"))))
		})
	})

	It("should list system directories before user directories", func() {
		paths := platform.FontPaths{SystemDirs: []string{"/a"}, UserDirs: []string{"/b"}}
		Expect(paths.All()).To(Equal([]string{"/a", "/b"}))
	})
})
