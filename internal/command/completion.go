package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/vlctlgo/internal/meta"
)

const bashCompletionScript = `# bash completion for vlctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_vlctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "rq sq view wq completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local common="--attrs -a --color -c --filter -f --output -o --sort -s --titles -t --tldr"
  local src="--format -F --split --jsonpath -j --estimate -e --width -W"

    # Determine if a Source (first non-flag after subcommand) has already been provided
    local have_source=0
    local idx=2
    while [[ $idx -lt ${#COMP_WORDS[@]} ]]; do
        local w=${COMP_WORDS[$idx]}
        if [[ $w != -* || $w == - ]]; then
            have_source=1
            break
        fi
        ((idx++))
    done

    case "$cmd" in
    rq)
      local opts="$common $src --schema --limit -l"
            ;;
        sq)
      local opts="$common $src --schema"
            ;;
        view)
      local opts="$src --overscan --tldr"
            ;;
        wq)
      local opts="$common $src --schema --offset --vh --overscan"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--format" || "$prev" == "-F" ]]; then
        COMPREPLY=( $(compgen -W "text jsonl auto" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--split" ]]; then
        COMPREPLY=( $(compgen -W "para line" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', or we've already consumed the Source, offer flags
  if [[ "$cur" == -* || $have_source -eq 1 ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise, we're on the (optional) Source positional - complete files
  COMPREPLY=( $(compgen -o filenames -f -- "$cur") )
  return 0
}

complete -F _vlctl vlctl
`

const zshCompletionScript = `#compdef vlctl

_vlctl() {
  local -a cmds
  cmds=(
    'rq:row geometry query'
    'sq:summary query'
    'view:interactive viewer'
    'wq:window query'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-f --filter)'{-f,--filter}'[filters to apply]:filters'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '(-s --sort)'{-s,--sort}'[sort attributes]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  local -a src
  src=(
  '(-F --format)'{-F,--format}'[source format]:format:(text jsonl auto)'
  '--split[text row split mode]:mode:(para line)'
  '(-j --jsonpath)'{-j,--jsonpath}'[gjson path per jsonl document]:path'
  '(-e --estimate)'{-e,--estimate}'[estimated row height]:lines'
  '(-W --width)'{-W,--width}'[measurement wrap width]:columns'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'vlctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    rq)
      _arguments -C \
        $common \
        $src \
        '--schema[dump schema]' \
        '(-l --limit)'{-l,--limit}'[limit rows returned]:limit' \
        '::Source:_files'
      ;;
    sq)
      _arguments -C \
        $common \
        $src \
        '--schema[dump schema]' \
        '::Source:_files'
      ;;
    view)
      _arguments -C \
        $src \
        '--overscan[rows past each viewport edge]:rows' \
        '--tldr[show tldr page]' \
        '::Source:_files'
      ;;
    wq)
      _arguments -C \
        $common \
        $src \
        '--schema[dump schema]' \
        '--offset[scroll offset in lines]:lines' \
        '--vh[viewport height in lines]:lines' \
        '--overscan[rows past each viewport edge]:rows' \
        '::Source:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:Source:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _vlctl vlctl vlctlgo
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		if strings.HasSuffix(sh, "zsh") {
			fmt.Fprint(os.Stdout, zshCompletionScript)
		} else if strings.HasSuffix(sh, "bash") {
			fmt.Fprint(os.Stdout, bashCompletionScript)
		} else {
			fmt.Fprintln(os.Stderr, "usage: vlctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "vlctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
