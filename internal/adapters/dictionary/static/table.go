package static

// table: clave en minúsculas sin espacios extremos.
var table = map[string]entry{
	"paracetamol": {
		Name:           "Paracetamol",
		Description:    "Analgésico y antipirético utilizado para aliviar el dolor leve a moderado y reducir la fiebre. Efectivo para dolores de cabeza, musculares, artritis menor, resfriados y dolor de muelas.",
		OverTheCounter: true,
		GenericName:    "Acetaminofén",
	},
	"ibuprofeno": {
		Name:           "Ibuprofeno",
		Description:    "Antiinflamatorio no esteroideo (AINE) usado para tratar el dolor, la fiebre y la inflamación. Útil para dolores menstruales, artritis, lesiones deportivas y dolores de cabeza.",
		OverTheCounter: true,
	},
	"aspirina": {
		Name:           "Aspirina",
		Description:    "Analgésico, antipirético y antiinflamatorio. También se usa en bajas dosis para prevenir problemas cardiovasculares como infartos y derrames cerebrales.",
		OverTheCounter: true,
		GenericName:    "Ácido acetilsalicílico",
	},
	"naproxeno": {
		Name:           "Naproxeno",
		Description:    "Antiinflamatorio no esteroideo de acción prolongada. Se utiliza para aliviar el dolor y la inflamación causados por artritis, dolores menstruales y lesiones.",
		OverTheCounter: false,
	},
	"amoxicilina": {
		Name:           "Amoxicilina",
		Description:    "Antibiótico de amplio espectro del grupo de las penicilinas. Trata infecciones bacterianas como otitis, faringitis, neumonía, infecciones urinarias y de la piel.",
		OverTheCounter: false,
	},
	"azitromicina": {
		Name:           "Azitromicina",
		Description:    "Antibiótico macrólido usado para tratar infecciones respiratorias, de oído, piel y enfermedades de transmisión sexual. Generalmente se toma por 3-5 días.",
		OverTheCounter: false,
	},
	"ciprofloxacino": {
		Name:           "Ciprofloxacino",
		Description:    "Antibiótico fluoroquinolona de amplio espectro. Efectivo contra infecciones urinarias, respiratorias, gastrointestinales y de la piel.",
		OverTheCounter: false,
	},
	"metformina": {
		Name:           "Metformina",
		Description:    "Medicamento antidiabético oral de primera línea para diabetes tipo 2. Reduce la producción de glucosa en el hígado y mejora la sensibilidad a la insulina.",
		OverTheCounter: false,
	},
	"glibenclamida": {
		Name:           "Glibenclamida",
		Description:    "Antidiabético oral del grupo de las sulfonilureas. Estimula el páncreas para producir más insulina. Usado en diabetes tipo 2.",
		OverTheCounter: false,
	},
	"losartan": {
		Name:           "Losartán",
		Description:    "Antihipertensivo del grupo de los antagonistas de los receptores de angiotensina II (ARA-II). Reduce la presión arterial y protege los riñones en diabéticos.",
		OverTheCounter: false,
	},
	"enalapril": {
		Name:           "Enalapril",
		Description:    "Inhibidor de la ECA usado para tratar la presión arterial alta e insuficiencia cardíaca. Ayuda a relajar los vasos sanguíneos.",
		OverTheCounter: false,
	},
	"atorvastatina": {
		Name:           "Atorvastatina",
		Description:    "Estatina que reduce el colesterol LDL (malo) y los triglicéridos, mientras aumenta el colesterol HDL (bueno). Previene enfermedades cardiovasculares.",
		OverTheCounter: false,
	},
	"omeprazol": {
		Name:           "Omeprazol",
		Description:    "Inhibidor de la bomba de protones que reduce la producción de ácido estomacal. Trata úlceras, reflujo gastroesofágico y acidez estomacal.",
		OverTheCounter: false,
	},
	"ranitidina": {
		Name:           "Ranitidina",
		Description:    "Antihistamínico H2 que reduce la producción de ácido estomacal. Usado para tratar úlceras y reflujo ácido.",
		OverTheCounter: true,
	},
	"salbutamol": {
		Name:           "Salbutamol",
		Description:    "Broncodilatador usado para aliviar los síntomas del asma y enfermedad pulmonar obstructiva crónica (EPOC). Relaja los músculos de las vías respiratorias.",
		OverTheCounter: false,
	},
	"loratadina": {
		Name:           "Loratadina",
		Description:    "Antihistamínico de segunda generación para alergias. Alivia estornudos, picazón, ojos llorosos y secreción nasal sin causar mucha somnolencia.",
		OverTheCounter: true,
	},
	"clonazepam": {
		Name:           "Clonazepam",
		Description:    "Benzodiacepina usada para tratar trastornos de ansiedad, crisis de pánico y ciertos tipos de convulsiones. Tiene efecto sedante y relajante muscular.",
		OverTheCounter: false,
	},
	"diclofenaco": {
		Name:           "Diclofenaco",
		Description:    "Antiinflamatorio no esteroideo potente. Alivia el dolor y la inflamación en artritis, lesiones deportivas, dolor postoperatorio y cólicos menstruales.",
		OverTheCounter: false,
	},
	"captopril": {
		Name:           "Captopril",
		Description:    "Inhibidor de la ECA usado para tratar hipertensión arterial e insuficiencia cardíaca. Ayuda a los vasos sanguíneos a relajarse.",
		OverTheCounter: false,
	},
}
