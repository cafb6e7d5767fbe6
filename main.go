package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kacebover/tabbar-icons/bundle"
	"github.com/kacebover/tabbar-icons/config"
	"github.com/kacebover/tabbar-icons/iconset"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	// Проверка подкоманд
	if len(args) >= 1 {
		switch args[0] {
		case "generate", "сгенерировать":
			return runGenerateCommand(args[1:], stdout, stderr)
		case "list", "список":
			return runListCommand(stdout)
		case "preview", "просмотр":
			return runPreviewCommand(args[1:], stdout, stderr)
		case "bundle", "архив":
			return runBundleCommand(args[1:], stdout, stderr)
		case "config", "настройки":
			return runConfigCommand(args[1:], stdout, stderr)
		case "help", "--help", "-h", "помощь":
			printMainHelp(stdout)
			return 0
		}
		if !strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(stderr, "❌ Неизвестная команда: %s\n", args[0])
			printMainHelp(stderr)
			return 1
		}
	}

	// По умолчанию: генерация всех иконок
	return runGenerateCommand(args, stdout, stderr)
}

func printMainHelp(w io.Writer) {
	fmt.Fprintln(w, "🎨 Генератор Иконок Панели Вкладок")
	fmt.Fprintln(w, "==================================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Команды:")
	fmt.Fprintln(w, "  generate (сгенерировать)  Сгенерировать все PNG-иконки (по умолчанию)")
	fmt.Fprintln(w, "  list (список)             Показать таблицу иконок")
	fmt.Fprintln(w, "  preview (просмотр)        Показать иконку в терминале")
	fmt.Fprintln(w, "  bundle (архив)            Упаковать иконки в ZIP-архив")
	fmt.Fprintln(w, "  config (настройки)        Создать или показать файл настроек")
	fmt.Fprintln(w, "  help (помощь)             Показать эту справку")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Использование:")
	fmt.Fprintln(w, "  tabbar-icons [generate] [опции]")
	fmt.Fprintln(w, "  tabbar-icons preview <иконка>")
	fmt.Fprintln(w, "  tabbar-icons bundle -output icons.zip [опции]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Примеры:")
	fmt.Fprintln(w, "  tabbar-icons -dir ./miniprogram/images")
	fmt.Fprintln(w, "  tabbar-icons generate -scale 2 -aa")
	fmt.Fprintln(w, "  tabbar-icons preview home-active")
}

// renderFlags are shared by every command that rasterizes icons.
type renderFlags struct {
	configPath *string
	scale      *int
	antialias  *bool
	font       *string
	verbose    *bool
}

func addRenderFlags(fs *flag.FlagSet) renderFlags {
	return renderFlags{
		configPath: fs.String("config", "", "Путь к файлу настроек (JSON)"),
		scale:      fs.Int("scale", 1, "Множитель размера иконки (1-4)"),
		antialias:  fs.Bool("aa", false, "Включить сглаживание краёв"),
		font:       fs.String("font", "", "Шрифт для текста: пусто, goregular или путь к TTF/OTF"),
		verbose:    fs.Bool("verbose", false, "Подробный вывод"),
	}
}

// loadSettings reads the config file and applies explicitly set flags over it.
func loadSettings(fs *flag.FlagSet, rf renderFlags, overrides map[string]func(*config.AppConfig)) (*config.AppConfig, error) {
	path := *rf.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Scale = *rf.scale
		case "aa":
			cfg.Antialias = *rf.antialias
		case "font":
			cfg.Font = *rf.font
		case "verbose":
			cfg.Verbose = *rf.verbose
		default:
			if apply, ok := overrides[f.Name]; ok {
				apply(cfg)
			}
		}
	})

	cfg.Validate()
	return cfg, nil
}

// renderOptions turns settings into rasterizer options.
func renderOptions(cfg *config.AppConfig) (iconset.Options, error) {
	face, err := iconset.LoadFace(cfg.Font)
	if err != nil {
		return iconset.Options{}, err
	}
	return iconset.Options{
		Scale:     cfg.Scale,
		Antialias: cfg.Antialias,
		Face:      face,
	}, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// КОМАНДА ГЕНЕРАЦИИ
// ═══════════════════════════════════════════════════════════════════════════

func runGenerateCommand(args []string, stdout, stderr io.Writer) int {
	generateCmd := flag.NewFlagSet("generate", flag.ContinueOnError)
	generateCmd.SetOutput(stderr)

	dir := generateCmd.String("dir", "images", "Директория для сохранения иконок")
	rf := addRenderFlags(generateCmd)

	if err := generateCmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := loadSettings(generateCmd, rf, map[string]func(*config.AppConfig){
		"dir": func(c *config.AppConfig) { c.OutputDir = *dir },
	})
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка настроек: %v\n", err)
		return 1
	}

	result, err := generate(cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка генерации: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "✅ Все иконки сгенерированы!")
	fmt.Fprintf(stdout, "📁 Расположение: %s\n", result.Dir)
	fmt.Fprintf(stdout, "🖼️  Иконок:       %d\n", len(result.Files))
	fmt.Fprintf(stdout, "📊 Размер:       %s\n", config.FormatFileSize(result.TotalBytes))
	return 0
}

// generate renders the icon table into cfg.OutputDir, printing one line per file.
func generate(cfg *config.AppConfig, stdout io.Writer) (*iconset.Result, error) {
	opts, err := renderOptions(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		fmt.Fprintf(stdout, "🔄 Генерация %d иконок (масштаб %dx, сглаживание: %v)...\n",
			len(iconset.Icons()), opts.Scale, opts.Antialias)
	}

	return iconset.Generate(context.Background(), cfg.OutputDir, opts, func(current, total int, path string) {
		if cfg.Verbose {
			fmt.Fprintf(stdout, "   [%d/%d] ", current, total)
		}
		fmt.Fprintf(stdout, "🖼️  Сгенерирована иконка: %s\n", path)
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// КОМАНДЫ ПРОСМОТРА
// ═══════════════════════════════════════════════════════════════════════════

func runListCommand(stdout io.Writer) int {
	fmt.Fprintln(stdout, "📋 Иконки")
	fmt.Fprintln(stdout, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	for _, icon := range iconset.Icons() {
		state := "обычная"
		if icon.Active() {
			state = "активная"
		}
		c := icon.Color
		fmt.Fprintf(stdout, "  %-20s %-16s %-9s rgba(%d,%d,%d,%d)\n",
			icon.File, icon.Shape, state, c.R, c.G, c.B, c.A)
	}
	fmt.Fprintln(stdout, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintf(stdout, "Размер холста: %dx%d px, прозрачный фон\n", iconset.Size, iconset.Size)
	return 0
}

func runPreviewCommand(args []string, stdout, stderr io.Writer) int {
	previewCmd := flag.NewFlagSet("preview", flag.ContinueOnError)
	previewCmd.SetOutput(stderr)
	rf := addRenderFlags(previewCmd)

	if err := previewCmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if previewCmd.NArg() != 1 {
		fmt.Fprintln(stderr, "❌ Ошибка: Укажите одну иконку, например: preview home-active")
		return 1
	}

	icon, err := iconset.Lookup(previewCmd.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка: %v\n", err)
		return 1
	}

	cfg, err := loadSettings(previewCmd, rf, nil)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка настроек: %v\n", err)
		return 1
	}
	opts, err := renderOptions(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка: %v\n", err)
		return 1
	}

	img, err := iconset.Render(icon, opts)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "👁️  %s\n", icon.File)
	fmt.Fprint(stdout, iconset.Preview(img))
	return 0
}

// ═══════════════════════════════════════════════════════════════════════════
// КОМАНДА АРХИВАЦИИ
// ═══════════════════════════════════════════════════════════════════════════

func runBundleCommand(args []string, stdout, stderr io.Writer) int {
	bundleCmd := flag.NewFlagSet("bundle", flag.ContinueOnError)
	bundleCmd.SetOutput(stderr)

	outputPath := bundleCmd.String("output", "", "Путь к выходному ZIP-файлу")
	dir := bundleCmd.String("dir", "", "Директория для иконок (по умолчанию временная)")
	password := bundleCmd.String("password", "", "Пароль для шифрования архива (AES-256)")
	generatePwd := bundleCmd.Bool("generate-password", false, "Сгенерировать случайный пароль")
	pwdLength := bundleCmd.Int("password-length", 16, "Длина генерируемого пароля")
	rf := addRenderFlags(bundleCmd)

	if err := bundleCmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := loadSettings(bundleCmd, rf, map[string]func(*config.AppConfig){
		"output": func(c *config.AppConfig) { c.BundlePath = *outputPath },
		"dir":    func(c *config.AppConfig) { c.OutputDir = *dir },
	})
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка настроек: %v\n", err)
		return 1
	}

	// Без -dir иконки рендерятся во временную директорию
	if *dir == "" {
		tmp, err := os.MkdirTemp("", "tabbar-icons-")
		if err != nil {
			fmt.Fprintf(stderr, "❌ Ошибка: %v\n", err)
			return 1
		}
		defer os.RemoveAll(tmp)
		cfg.OutputDir = tmp
	}

	if !strings.HasSuffix(strings.ToLower(cfg.BundlePath), ".zip") {
		cfg.BundlePath += ".zip"
	}

	pwd := *password
	if *generatePwd {
		pwd, err = bundle.GeneratePassword(*pwdLength)
		if err != nil {
			fmt.Fprintf(stderr, "❌ Ошибка генерации пароля: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "🔑 Сгенерированный пароль:")
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "   %s\n", pwd)
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "⚠️  ВАЖНО: Сохраните этот пароль! Его невозможно восстановить.")
		fmt.Fprintln(stdout)
	}

	bundler, err := bundle.NewBundler(bundle.Config{
		OutputPath: cfg.BundlePath,
		Password:   pwd,
		OnProgress: func(current, total int, archivePath string) {
			if cfg.Verbose {
				fmt.Fprintf(stdout, "   📦 %s (%d/%d)\n", archivePath, current, total)
			}
		},
	})
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка: %v\n", err)
		return 1
	}

	generated, err := generate(cfg, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка генерации: %v\n", err)
		return 1
	}

	entries := make([]bundle.FileEntry, 0, len(generated.Files))
	for _, path := range generated.Files {
		entries = append(entries, bundle.FileEntry{SourcePath: path})
	}

	result, err := bundler.Bundle(entries)
	if err != nil {
		fmt.Fprintf(stderr, "❌ Ошибка архивации: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "✅ Архив создан!")
	fmt.Fprintln(stdout, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintf(stdout, "📦 Архив:             %s\n", result.OutputPath)
	fmt.Fprintf(stdout, "📁 Файлов:            %d\n", result.Files)
	fmt.Fprintf(stdout, "🔐 Зашифрован:        %v\n", result.Encrypted)
	fmt.Fprintf(stdout, "📊 Исходный размер:   %s\n", config.FormatFileSize(result.TotalSize))
	fmt.Fprintf(stdout, "📊 Размер архива:     %s\n", config.FormatFileSize(result.ArchiveSize))
	fmt.Fprintln(stdout, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	return 0
}

// ═══════════════════════════════════════════════════════════════════════════
// КОМАНДА НАСТРОЕК
// ═══════════════════════════════════════════════════════════════════════════

func runConfigCommand(args []string, stdout, stderr io.Writer) int {
	configCmd := flag.NewFlagSet("config", flag.ContinueOnError)
	configCmd.SetOutput(stderr)
	path := configCmd.String("config", config.DefaultPath(), "Путь к файлу настроек")

	if err := configCmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	action := "show"
	if configCmd.NArg() > 0 {
		action = configCmd.Arg(0)
	}

	switch action {
	case "init":
		if _, err := os.Stat(*path); err == nil {
			fmt.Fprintf(stderr, "❌ Ошибка: Файл уже существует: %s\n", *path)
			return 1
		}
		if err := config.Save(*path, config.DefaultConfig()); err != nil {
			fmt.Fprintf(stderr, "❌ Ошибка сохранения: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "✅ Файл настроек создан: %s\n", *path)
		return 0
	case "show":
		cfg, err := config.Load(*path)
		if err != nil {
			fmt.Fprintf(stderr, "❌ Ошибка настроек: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "⚙️  %s\n", *path)
		fmt.Fprintf(stdout, "  output_dir:  %s\n", cfg.OutputDir)
		fmt.Fprintf(stdout, "  bundle_path: %s\n", cfg.BundlePath)
		fmt.Fprintf(stdout, "  scale:       %d\n", cfg.Scale)
		fmt.Fprintf(stdout, "  antialias:   %v\n", cfg.Antialias)
		fmt.Fprintf(stdout, "  font:        %q\n", cfg.Font)
		fmt.Fprintf(stdout, "  verbose:     %v\n", cfg.Verbose)
		return 0
	default:
		fmt.Fprintf(stderr, "❌ Неизвестное действие: %s (init, show)\n", action)
		return 1
	}
}
