package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает переменные из env-файла и применяет флаги командной строки.
// Отсутствующий файл не ошибка: в контейнере окружение приходит снаружи.
// Уже выставленные переменные окружения не перезаписываются.
func Load() error {
	var (
		envFile  string
		portFlag string
	)
	flag.StringVar(&envFile, "env", ".env", "Path to env file")
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	err := godotenv.Load(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
