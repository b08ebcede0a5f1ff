package tools

// All returns the probed tools in report order. The OS entry is not a
// probed tool and is filled in by the Scanner.
func All() []Tool {
	return []Tool{PythonTool(), NodeTool(), GitTool(), VSCodeTool(), JetBrainsTool()}
}

// PythonTool tries python3 first and falls back to python.
func PythonTool() Tool {
	return Tool{
		Name:     Python,
		Commands: [][]string{{"python3", "--version"}, {"python", "--version"}},
	}
}

func NodeTool() Tool {
	return Tool{Name: NodeJS, Commands: [][]string{{"node", "-v"}}}
}

func GitTool() Tool {
	return Tool{Name: Git, Commands: [][]string{{"git", "--version"}}}
}

func VSCodeTool() Tool {
	return Tool{Name: VSCode, Commands: [][]string{{"code", "--version"}}}
}

// JetBrainsPaths are the macOS application bundles checked for the IDE family.
var JetBrainsPaths = []string{
	"/Applications/PyCharm.app",
	"/Applications/IntelliJ IDEA.app",
	"/Applications/WebStorm.app",
}

// JetBrainsTool is detected by application bundle, not by command.
func JetBrainsTool() Tool {
	paths := make([]string, len(JetBrainsPaths))
	copy(paths, JetBrainsPaths)
	return Tool{Name: JetBrains, Paths: paths}
}
