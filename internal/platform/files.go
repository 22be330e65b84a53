package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ytget/wallgrid/internal/logging"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	AMCommand      = "am"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// Android storage and intents
const (
	AndroidDownloadsDir   = "/sdcard/Download"
	AndroidViewAction     = "android.intent.action.VIEW"
	AndroidScanFileAction = "android.intent.action.MEDIA_SCANNER_SCAN_FILE"
	ImageMIMEType         = "image/*"
)

// filenameReplacer keeps a record title from escaping the downloads directory
var filenameReplacer = strings.NewReplacer("/", "_", "\\", "_", "\x00", "")

// IsAndroid reports whether the process runs on Android. Fyne Android apps run
// as libdist.so and do not always report GOOS=android.
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		os.Getenv("ANDROID_STORAGE") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so"
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if info, err := os.Stat(dirPath); err == nil && info.IsDir() {
		return nil
	}
	return os.MkdirAll(dirPath, DefaultDirPermissions)
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	if IsAndroid() {
		// External storage so files show up in Gallery and the file manager
		return AndroidDownloadsDir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// SanitizeFilename replaces path separators so the name stays a single path
// element. Everything else, including spaces, is kept as is.
func SanitizeFilename(name string) string {
	name = filenameReplacer.Replace(strings.TrimSpace(name))
	switch name {
	case "", ".", "..":
		return "_" + name
	}
	return name
}

// OpenFileWithDefaultApp opens the file with the default system application
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	if IsAndroid() {
		return exec.Command(AMCommand, "start", "-a", AndroidViewAction, "-d", "file://"+absPath, "-t", ImageMIMEType).Run()
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", absPath).Run()
	case OSLinux:
		return exec.Command(XDGOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// NotifyMediaScanner notifies Android media scanner about new media files
// so downloaded wallpapers appear in the Gallery app. It is a no-op elsewhere.
func NotifyMediaScanner(filePath string) error {
	if !IsAndroid() {
		return nil
	}

	cmd := exec.Command(AMCommand, "broadcast", "-a", AndroidScanFileAction, "-d", "file://"+filePath)

	// Don't block the download on the broadcast
	go func() {
		if err := cmd.Run(); err != nil {
			logging.NewLogger("platform").WithError(err).WithField("path", filePath).Warn("Failed to notify media scanner")
		}
	}()

	return nil
}
