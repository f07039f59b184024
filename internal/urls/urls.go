package urls

// All URLs point to the project pages at https://muurk.github.io/termfolio/

// Repository is the source repository.
const Repository = "https://github.com/muurk/termfolio"

// ConfigReference documents every key of config.yaml.
const ConfigReference = "https://muurk.github.io/termfolio/config/"

// ResumeGuide explains how to embed a CV at build time.
const ResumeGuide = "https://muurk.github.io/termfolio/resume/"
