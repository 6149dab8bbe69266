package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "maftools domain summaries"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the maftools Pfam domain summary API!"
	SERVICE_DESCRIPTION ServiceInfo = "Summarizes MAF mutations by amino-acid position and Pfam protein domain."
	SERVICE_CONTACT     ServiceInfo = "https://github.com/JohnMCMa/maftools/issues"

	SERVICE_ARTIFACT    ServiceInfo = "maftools"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("io.github.johnmcma:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
	SERVICE_TYPE        ServiceInfo = ServiceInfo(fmt.Sprintf("%s:%s", SERVICE_TYPE_NO_VER, SERVICE_VERSION))
)
