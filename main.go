package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/taskdeck/taskdeck/config"
	"github.com/taskdeck/taskdeck/database"
	"github.com/taskdeck/taskdeck/logger"
	"github.com/taskdeck/taskdeck/web"
	"github.com/taskdeck/taskdeck/web/global"
	"github.com/taskdeck/taskdeck/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close db err:", err)
		}
		logger.CloseLogger()
	}()

	server := web.NewServer()
	global.SetWebServer(server)
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			global.SetWebServer(server)
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func resetSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	err = settingService.ResetSettings()
	if err != nil {
		fmt.Println("reset setting failed:", err)
	} else {
		fmt.Println("reset setting success")
	}
}

func showSetting(show bool) {
	if !show {
		return
	}
	settingService := service.SettingService{}
	port, err := settingService.GetPort()
	if err != nil {
		fmt.Println("get current port failed, error info:", err)
	}
	userService := service.UserService{}
	userModel, err := userService.GetFirstUser()
	if err != nil {
		fmt.Println("get current user info failed, error info:", err)
		return
	}
	if userModel.Username == "" {
		fmt.Println("current username is empty")
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("username:", userModel.Username)
	fmt.Println("port:", port)
}

func updateSetting(port int, username string, password string, timeLocation string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}

	if port > 0 {
		err := settingService.SetPort(port)
		if err != nil {
			fmt.Println("set port failed:", err)
		} else {
			fmt.Printf("set port %v success\n", port)
		}
	}
	if timeLocation != "" {
		err := settingService.SetTimeLocation(timeLocation)
		if err != nil {
			fmt.Println("set time location failed:", err)
		} else {
			fmt.Printf("set time location %v success\n", timeLocation)
		}
	}
	if username != "" || password != "" {
		userService := service.UserService{}
		err := userService.UpdateFirstUser(username, password)
		if err != nil {
			fmt.Println("set username and password failed:", err)
		} else {
			fmt.Println("set username and password success")
		}
	}
}

func exportSetting(path string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	settingService := service.SettingService{}
	allSetting, err := settingService.GetAllSetting()
	if err != nil {
		fmt.Println("export setting failed:", err)
		return
	}
	data, err := toml.Marshal(allSetting)
	if err != nil {
		fmt.Println("export setting failed:", err)
		return
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		fmt.Println("export setting failed:", err)
		return
	}
	fmt.Println("settings exported to", path)
}

func importSetting(path string) {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("import setting failed:", err)
		return
	}

	settingService := service.SettingService{}
	allSetting, err := settingService.GetAllSetting()
	if err != nil {
		fmt.Println("import setting failed:", err)
		return
	}
	if err := toml.Unmarshal(data, allSetting); err != nil {
		fmt.Println("import setting failed:", err)
		return
	}
	if err := settingService.UpdateAllSetting(allSetting); err != nil {
		fmt.Println("import setting failed:", err)
		return
	}
	fmt.Println("settings imported from", path)
}

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use: "taskdeck",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var (
		port         int
		username     string
		password     string
		timeLocation string
		reset        bool
		show         bool
	)
	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Update or show settings",
		Run: func(cmd *cobra.Command, args []string) {
			if reset {
				resetSetting()
				return
			}
			updateSetting(port, username, password, timeLocation)
			showSetting(show)
		},
	}
	settingCmd.Flags().IntVarP(&port, "port", "p", 0, "set web port")
	settingCmd.Flags().StringVarP(&username, "username", "u", "", "set login username")
	settingCmd.Flags().StringVarP(&password, "password", "w", "", "set login password")
	settingCmd.Flags().StringVarP(&timeLocation, "location", "l", "", "set workspace time location")
	settingCmd.Flags().BoolVarP(&reset, "reset", "r", false, "reset all settings")
	settingCmd.Flags().BoolVarP(&show, "show", "s", false, "show current settings")

	var exportCmd = &cobra.Command{
		Use:   "export [file]",
		Short: "Export settings to a TOML file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			exportSetting(args[0])
		},
	}

	var importCmd = &cobra.Command{
		Use:   "import [file]",
		Short: "Import settings from a TOML file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			importSetting(args[0])
		},
	}
	settingCmd.AddCommand(exportCmd, importCmd)

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(runCmd, settingCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
