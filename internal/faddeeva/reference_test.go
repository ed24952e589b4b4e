package faddeeva

// Reference values from an extended-precision evaluation of
// w(z) = exp(-z*z) * erfc(-i*z), rounded to double.
type refPoint struct {
	x, y     float64
	wRe, wIm float64
}

// First-quadrant abscissae covering the recurrence rectangle and the
// continued-fraction region outside it.
var refQ1 = []refPoint{
	{0.0, 0.0, 1.0, 0.0},
	{0.0, 1e-08, 0.9999999887162084, 0.0},
	{0.0, 0.0001, 0.9998871720825383, 0.0},
	{0.0, 0.01, 0.9888154610463425, 0.0},
	{0.0, 0.1, 0.8964569799691267, 0.0},
	{0.0, 0.31622776601683794, 0.7235784384776155, 0.0},
	{0.0, 0.6309573444801932, 0.5542482879997894, 0.0},
	{0.0, 1.0, 0.427583576155807, 0.0},
	{0.0, 1.5848931924611136, 0.30822427929091684, 0.0},
	{0.0, 2.51188643150958, 0.2099261494479651, 0.0},
	{0.0, 3.9810717055349722, 0.1376151083310341, 0.0},
	{0.0, 6.309573444801933, 0.08833485078499713, 0.0},
	{0.0, 10.0, 0.05614099274382259, 0.0},
	{0.0, 100.0, 0.005641613782989433, 0.0},
	{0.0, 10000.0, 5.641895807268084e-05, 0.0},
	{0.0, 100000000.0, 5.641895835477562e-09, 0.0},
	{1e-08, 0.0, 0.9999999999999999, 1.1283791670955125e-08},
	{1e-08, 1e-08, 0.9999999887162083, 1.1283791470955128e-08},
	{1e-08, 0.0001, 0.9998871720825382, 1.128179189661096e-08},
	{1e-08, 0.01, 0.9888154610463424, 1.1086028578745857e-08},
	{1e-08, 0.1, 0.8964569799691265, 9.490877711016872e-09},
	{1e-08, 0.31622776601683794, 0.7235784384776155, 6.707479808200559e-09},
	{1e-08, 0.6309573444801932, 0.5542482879997894, 4.289651111374316e-09},
	{1e-08, 1.0, 0.427583576155807, 2.7321201478389856e-09},
	{1e-08, 1.5848931924611136, 0.30822427929091684, 1.513740430966983e-09},
	{1e-08, 2.51188643150958, 0.2099261494479651, 7.375787426072093e-10},
	{1e-08, 3.9810717055349722, 0.1376151083310341, 3.266793903389284e-10},
	{1e-08, 6.309573444801933, 0.08833485078499713, 1.366870956839442e-10},
	{1e-08, 10.0, 0.05614099274382259, 5.5593122190608564e-11},
	{1e-08, 100.0, 0.005641613782989433, 5.641049762599318e-13},
	{1e-08, 10000.0, 5.641895807268084e-05, 5.641895750849128e-17},
	{1e-08, 100000000.0, 5.641895835477562e-09, 5.641895835477562e-25},
	{0.0001, 0.0, 0.9999999900000001, 0.00011283791595729848},
	{0.0001, 1e-08, 0.9999999787162087, 0.00011283791395729852},
	{0.0001, 0.0001, 0.9998871620847948, 0.0001128179182140568},
	{0.0001, 0.01, 0.9888154512690482, 0.0001108602850549082},
	{0.0001, 0.1, 0.8964569719536446, 9.490877653088009e-05},
	{0.0001, 0.31622776601683794, 0.7235784333629225, 6.707479774266746e-05},
	{0.0001, 0.6309573444801932, 0.5542482851638935, 4.2896510947055055e-05},
	{0.0001, 1.0, 0.4275835746120914, 2.732120139916289e-05},
	{0.0001, 1.5848931924611136, 0.30822427860779095, 1.5137404280932574e-05},
	{0.0001, 2.51188643150958, 0.20992614920141764, 7.375787418186792e-06},
	{0.0001, 3.9810717055349722, 0.1376151082554171, 3.2667939016797727e-06},
	{0.0001, 6.309573444801933, 0.0883348507640859, 1.366870956523035e-06},
	{0.0001, 10.0, 0.05614099273834388, 5.559312218523479e-07},
	{0.0001, 100.0, 0.005641613782983793, 5.641049762593679e-09},
	{0.0001, 10000.0, 5.6418958072680836e-05, 5.641895750849127e-13},
	{0.0001, 100000000.0, 5.641895835477562e-09, 5.641895835477562e-21},
	{0.01, 0.0, 0.9999000049998333, 0.011283039448266313},
	{0.01, 1e-08, 0.9998999937182984, 0.011283039248286315},
	{0.01, 0.0001, 0.999787199645451, 0.011281039873882064},
	{0.01, 0.01, 0.9887176929549546, 0.011085296057477264},
	{0.01, 0.1, 0.8963768288668207, 0.009490298444066715},
	{0.01, 0.31622776601683794, 0.7235272935680713, 0.006707140481093837},
	{0.01, 0.6309573444801932, 0.5542199299317914, 0.004289484427677075},
	{0.01, 1.0, 0.4275681393753858, 0.0027320409225362035},
	{0.01, 1.5848931924611136, 0.3082174481458637, 0.001513711694137443},
	{0.01, 2.51188643150958, 0.20992368399761616, 0.000737570857377331},
	{0.01, 3.9810717055349722, 0.13761435216475765, 0.0003266776808358682},
	{0.01, 6.309573444801933, 0.08833464167308404, 0.00013668677927801667},
	{0.01, 10.0, 0.05614093795681973, 5.559306845286827e-05},
	{0.01, 100.0, 0.005641613726587395, 5.641049706208555e-07},
	{0.01, 10000.0, 5.6418958072624423e-05, 5.641895750843486e-11},
	{0.01, 100000000.0, 5.641895835477562e-09, 5.641895835477562e-19},
	{0.1, 0.0, 0.9900498337491681, 0.11208866436449538},
	{0.1, 1e-08, 0.9900498226895538, 0.11208866238439573},
	{0.1, 0.0001, 0.9899392473075117, 0.1120688655944718},
	{0.1, 0.01, 0.9790865265534254, 0.11013063795281995},
	{0.1, 0.1, 0.8884785624756437, 0.0943316510572851},
	{0.1, 0.31622776601683794, 0.7184838978779035, 0.06673655905758098},
	{0.1, 0.6309573444801932, 0.5514212924080486, 0.0427302637149266},
	{0.1, 1.0, 0.42604361081205644, 0.02724214085161446},
	{0.1, 1.5848931924611136, 0.30754229022486484, 0.01510870978178255},
	{0.1, 2.51188643150958, 0.20967984417135144, 0.0073679093057345026},
	{0.1, 3.9810717055349722, 0.13753952910869857, 0.0032650852103370026},
	{0.1, 6.309573444801933, 0.08831394428194267, 0.0013665546203720583},
	{0.1, 10.0, 0.05613551456287315, 0.0005558774892126872},
	{0.1, 100.0, 0.00564160814279117, 5.641044123528587e-06},
	{0.1, 10000.0, 5.6418958067038946e-05, 5.641895750284937e-10},
	{0.1, 100000000.0, 5.641895835477562e-09, 5.641895835477562e-18},
	{0.31622776601683794, 0.0, 0.9048374180359595, 0.33396144122070814},
	{0.31622776601683794, 1e-08, 0.9048374088643256, 0.33396143549801394},
	{0.31622776601683794, 0.0001, 0.9047457089335681, 0.33390422051705104},
	{0.31622776601683794, 0.01, 0.8957376938361283, 0.3283006160479305},
	{0.31622776601683794, 0.1, 0.819906266979859, 0.28247675680420503},
	{0.31622776601683794, 0.31622776601683794, 0.6743977315893799, 0.20171851763230284},
	{0.31622776601683794, 0.6309573444801932, 0.5267613270724004, 0.13051640738468165},
	{0.31622776601683794, 1.0, 0.4125152765433148, 0.08394367408281476},
	{0.31622776601683794, 1.5848931924611136, 0.30150533886984404, 0.04697328744090713},
	{0.31622776601683794, 2.51188643150958, 0.20748470903459473, 0.02307718742839681},
	{0.31622776601683794, 3.9810717055349722, 0.13686270103887113, 0.010276707598515226},
	{0.31622776601683794, 6.309573444801933, 0.08812621103609737, 0.004312441979684193},
	{0.31622776601683794, 10.0, 0.05608625810242764, 0.0017563111561963293},
	{0.31622776601683794, 100.0, 0.005641557381514182, 1.7838387322695985e-05},
	{0.31622776601683794, 10000.0, 5.641895801626188e-05, 1.784124087606786e-09},
	{0.31622776601683794, 100000000.0, 5.641895835477562e-09, 1.7841241161527708e-17},
	{0.6309573444801932, 0.0, 0.6715900491278007, 0.5499514309951873},
	{0.6309573444801932, 1e-08, 0.671590044783927, 0.5499514225202938},
	{0.6309573444801932, 0.0001, 0.6715466117586512, 0.5498666903000827},
	{0.6309573444801932, 0.01, 0.6672599171486769, 0.5415583220064594},
	{0.6309573444801932, 0.1, 0.6295652849900737, 0.4728575843628138},
	{0.6309573444801932, 0.31622776601683794, 0.5487472656835575, 0.34801536375388814},
	{0.6309573444801932, 0.6309573444801932, 0.45428532866182386, 0.23287104092883948},
	{0.6309573444801932, 1.0, 0.3716672735150398, 0.15404594101274255},
	{0.6309573444801932, 1.5848931924611136, 0.28274012679490407, 0.08869976300179888},
	{0.6309573444801932, 2.51188643150958, 0.20048244788578476, 0.044627024800413875},
	{0.6309573444801932, 3.9810717055349722, 0.13466357300593718, 0.020190709991239543},
	{0.6309573444801932, 6.309573444801933, 0.08750980205480766, 0.008545590804972055},
	{0.6309573444801932, 10.0, 0.05592370993321899, 0.003494241347154759},
	{0.6309573444801932, 100.0, 0.005641389251362535, 3.559120136731901e-05},
	{0.6309573444801932, 10000.0, 5.641895784807293e-05, 3.5597955466180504e-09},
	{0.6309573444801932, 100000000.0, 5.641895835477562e-09, 3.5597956141867834e-17},
	{1.0, 0.0, 0.36787944117144233, 0.6071577058413937},
	{1.0, 1e-08, 0.36787944203080475, 0.607157698483805},
	{1.0, 0.0001, 0.3678880311175114, 0.6070841351651288},
	{1.0, 0.01, 0.36870241739776605, 0.5998519944957883},
	{1.0, 0.1, 0.37317014831126744, 0.5385548078594318},
	{1.0, 0.31622776601683794, 0.3685044433828995, 0.41948329478149626},
	{1.0, 0.6309573444801932, 0.34263027352001285, 0.29879122748153203},
	{1.0, 1.0, 0.3047442052569126, 0.20821893820283163},
	{1.0, 1.5848931924611136, 0.2499196133259744, 0.1264384310658621},
	{1.0, 2.51188643150958, 0.18750362998735035, 0.0665377532289524},
	{1.0, 3.9810717055349722, 0.13041474912468565, 0.031036806177502842},
	{1.0, 6.309573444801933, 0.08629008520132855, 0.013359174132467948},
	{1.0, 10.0, 0.05559831964105537, 0.005506079556625048},
	{1.0, 100.0, 0.005641049818970359, 5.640485911316692e-05},
	{1.0, 10000.0, 5.641895750849128e-05, 5.641895694430173e-09},
	{1.0, 100000000.0, 5.641895835477562e-09, 5.641895835477561e-17},
	{1.5848931924611136, 0.0, 0.08111507678432225, 0.45606526570611255},
	{1.5848931924611136, 1e-08, 0.08111507995682525, 0.4560652631349379},
	{1.5848931924611136, 0.0001, 0.08114679855087548, 0.4560395534922599},
	{1.5848931924611136, 0.01, 0.08425510279925229, 0.45348958872742434},
	{1.5848931924611136, 0.1, 0.10973547854695198, 0.430045182561626},
	{1.5848931924611136, 0.31622776601683794, 0.15359928718886984, 0.3742894347595021},
	{1.5848931924611136, 0.6309573444801932, 0.18643609354540167, 0.30146930423880974},
	{1.5848931924611136, 1.0, 0.19782484707836992, 0.23311695820223413},
	{1.5848931924611136, 1.5848931924611136, 0.18967925457567367, 0.15787880182560296},
	{1.5848931924611136, 2.51188643150958, 0.160549058919428, 0.09147398413461721},
	{1.5848931924611136, 3.9810717055349722, 0.12075741679804404, 0.04570568663699484},
	{1.5848931924611136, 6.309573444801933, 0.0833655491766431, 0.020470413152059014},
	{1.5848931924611136, 10.0, 0.054797142217781515, 0.008601963816817063},
	{1.5848931924611136, 100.0, 0.005640197383447902, 8.938216973797062e-05},
	{1.5848931924611136, 10000.0, 5.641895665550076e-05, 8.941801943488163e-09},
	{1.5848931924611136, 100000000.0, 5.6418958354775614e-09, 8.941802302223093e-17},
	{2.51188643150958, 0.0, 0.0018188088961572084, 0.25018535951616705},
	{2.51188643150958, 1e-08, 0.001818810181109734, 0.2501853594247942},
	{2.51188643150958, 0.0001, 0.0018316582100679052, 0.25018444506211757},
	{2.51188643150958, 0.01, 0.003101612506273864, 0.2500867580600485},
	{2.51188643150958, 0.1, 0.01442369001645678, 0.24857586580492116},
	{2.51188643150958, 0.31622776601683794, 0.039447009001443746, 0.24101279108760512},
	{2.51188643150958, 0.6309573444801932, 0.06896317812676894, 0.22321711602367816},
	{2.51188643150958, 1.0, 0.09289832097456335, 0.19770505762821386},
	{2.51188643150958, 1.5848931924611136, 0.11213415353148053, 0.15745399596412132},
	{2.51188643150958, 2.51188643150958, 0.11615413580845711, 0.10744693855102995},
	{2.51188643150958, 3.9810717055349722, 0.10152372112224348, 0.061341496678754596},
	{2.51188643150958, 6.309573444801933, 0.07679812860196579, 0.029937826296407934},
	{2.51188643150958, 10.0, 0.05288131680654359, 0.013160824675829045},
	{2.51188643150958, 100.0, 0.00563805729789514, 0.00014160744656822692},
	{2.51188643150958, 10000.0, 5.6418954512885555e-05, 1.4171800490369348e-08},
	{2.51188643150958, 100000000.0, 5.641895835477559e-09, 1.4171801597126485e-16},
	{3.9810717055349722, 0.0, 1.3088694199135076e-07, 0.14670049646933908},
	{3.9810717055349722, 1e-08, 1.3128365423403562e-07, 0.14670049646932867},
	{3.9810717055349722, 0.0001, 4.0980093252976425e-06, 0.1467004962527901},
	{3.9810717055349722, 0.01, 0.00039683936130680345, 0.14669936271954928},
	{3.9810717055349722, 0.1, 0.00396385195300649, 0.1465881754064281},
	{3.9810717055349722, 0.31622776601683794, 0.0124397467781335, 0.14558776956145242},
	{3.9810717055349722, 0.6309573444801932, 0.024221204304045067, 0.1423918815894903},
	{3.9810717055349722, 1.0, 0.036635592496272955, 0.13642601706043977},
	{3.9810717055349722, 1.5848931924611136, 0.05224560990396282, 0.12370205837586896},
	{3.9810717055349722, 2.51188643150958, 0.06668332219272112, 0.10086035358362731},
	{3.9810717055349722, 3.9810717055349722, 0.07192018185096473, 0.06969294814563883},
	{3.9810717055349722, 6.309573444801933, 0.06401959206542684, 0.0396856149481534},
	{3.9810717055349722, 10.0, 0.04860441081314446, 0.01918550494070339},
	{3.9810717055349722, 100.0, 0.005632688801008677, 0.0002242189970355179},
	{3.9810717055349722, 10000.0, 5.641894913088022e-05, 2.2460787979488578e-08},
	{3.9810717055349722, 100000000.0, 5.641895835477554e-09, 2.246079187619528e-16},
	{6.309573444801933, 0.0, 5.133638251052597e-18, 0.09058629845326045},
	{6.309573444801933, 1e-08, 1.4742639785040305e-10, 0.09058629845326045},
	{6.309573444801933, 0.0001, 1.4742639267651162e-06, 0.09058629842892578},
	{6.309573444801933, 0.01, 0.00014742598505247727, 0.09058605510727392},
	{6.309573444801933, 0.1, 0.0014738563816116073, 0.09056197071956183},
	{6.309573444801933, 0.31622776601683794, 0.00464917818714862, 0.09034364331138353},
	{6.309573444801933, 0.6309573444801932, 0.009200760457990792, 0.08962837985998276},
	{6.309573444801933, 1.0, 0.014346605140891167, 0.08822015133670007},
	{6.309573444801933, 1.5848931924611136, 0.021853775433115678, 0.08488043163701169},
	{6.309573444801933, 2.51188643150958, 0.03157347289769594, 0.07755305532327883},
	{6.309573444801933, 3.9810717055349722, 0.04103368821973324, 0.06385874554336211},
	{6.309573444801933, 6.309573444801933, 0.04498432373879388, 0.04442313527290066},
	{6.309573444801933, 10.0, 0.040372162969630025, 0.025292688810461934},
	{6.309573444801933, 100.0, 0.0056192487237581995, 0.00035451531953318254},
	{6.309573444801933, 10000.0, 5.641893561189858e-05, 3.5597941436103274e-08},
	{6.309573444801933, 100000000.0, 5.64189583547754e-09, 3.55979561418677e-16},
	{10.0, 0.0, 3.720075976020836e-44, 0.0567053942328876},
	{10.0, 1e-08, 5.728717562239308e-11, 0.0567053942328876},
	{10.0, 0.0001, 5.728717561645333e-07, 0.05670539422706978},
	{10.0, 0.01, 5.72871162249008e-05, 0.05670533605480962},
	{10.0, 0.1, 0.0005728123649610698, 0.05669957702863536},
	{10.0, 0.31622776601683794, 0.0018097032291067821, 0.056647276999504934},
	{10.0, 0.6309573444801932, 0.003599719089122753, 0.056474745108996645},
	{10.0, 1.0, 0.005669942566902179, 0.056129645315951264},
	{10.0, 1.5848931924611136, 0.008849065948189537, 0.05528148795483266},
	{10.0, 2.51188643150958, 0.013507409423697514, 0.05326198381470742},
	{10.0, 3.9810717055349722, 0.01959605016396527, 0.048794635176555815},
	{10.0, 6.309573444801933, 0.025631558691468978, 0.04033200069612066},
	{10.0, 10.0, 0.028279467454232456, 0.028138433276336895},
	{10.0, 100.0, 0.005585769932444725, 0.0005585217020593081},
	{10.0, 10000.0, 5.64189016537806e-05, 5.641890108959216e-08},
	{10.0, 100000000.0, 5.641895835477506e-09, 5.641895835477505e-16},
	{100.0, 0.0, 0.0, 0.005642177972594138},
	{100.0, 1e-08, 5.642742331498062e-13, 0.005642177972594138},
	{100.0, 0.0001, 5.642742331492417e-09, 0.005642177972588494},
	{100.0, 0.01, 5.642742275050879e-07, 0.005642177916158248},
	{100.0, 0.1, 5.642736686785444e-06, 0.005642172329010745},
	{100.0, 0.31622776601683794, 1.7843739517104056e-05, 0.005642121537268353},
	{100.0, 0.6309573444801932, 3.5601879338033886e-05, 0.005641953306215877},
	{100.0, 1.0, 5.6421779161441334e-05, 0.005641613670145867},
	{100.0, 1.5848931924611136, 8.940897269826846e-05, 0.005640760723278082},
	{100.0, 2.51188643150958, 0.00014164987267703907, 0.005638619354987259},
	{100.0, 3.9810717055349722, 0.00022428602461895672, 0.005633247646726045},
	{100.0, 6.309573444801933, 0.0003546207079979676, 0.0056197995700221215},
	{100.0, 10.0, 0.0005586854335309902, 0.005586301101406198},
	{100.0, 100.0, 0.0028210184361467864, 0.002820877388752222},
	{100.0, 10000.0, 5.641331674114775e-05, 5.6413316177071e-07},
	{100.0, 100000000.0, 5.641895835471921e-09, 5.64189583547192e-15},
	{10000.0, 0.0, 0.0, 5.641895863687043e-05},
	{10000.0, 1e-08, 5.641895920106003e-17, 5.641895863687043e-05},
	{10000.0, 0.0001, 5.641895920106002e-13, 5.641895863687042e-05},
	{10000.0, 0.01, 5.641895920100361e-11, 5.641895863681401e-05},
	{10000.0, 0.1, 5.641895919541812e-10, 5.641895863122853e-05},
	{10000.0, 0.31622776601683794, 1.7841241411305093e-09, 5.641895858045147e-05},
	{10000.0, 0.6309573444801932, 3.5597956534119173e-09, 5.64189584122625e-05},
	{10000.0, 1.0, 5.641895863687042e-09, 5.641895807268083e-05},
	{10000.0, 1.5848931924611136, 8.94180221174221e-09, 5.641895721969026e-05},
	{10000.0, 2.51188643150958, 1.4171800915523307e-08, 5.641895507707493e-05},
	{10000.0, 3.9810717055349722, 2.2460788653311976e-08, 5.641894969506927e-05},
	{10000.0, 6.309573444801933, 3.559794250404054e-08, 5.6418936176086814e-05},
	{10000.0, 10.0, 5.641890278215527e-08, 5.6418902217966793e-05},
	{10000.0, 100.0, 5.641331786907568e-07, 5.64133173049989e-05},
	{10000.0, 10000.0, 2.820947924791151e-05, 2.8209479106864117e-05},
	{10000.0, 100000000.0, 5.641895779058605e-09, 5.641895779058604e-13},
	{100000000.0, 0.0, 0.0, 5.641895835477563e-09},
	{100000000.0, 1e-08, 5.6418958354775635e-25, 5.641895835477563e-09},
	{100000000.0, 0.0001, 5.641895835477563e-21, 5.641895835477563e-09},
	{100000000.0, 0.01, 5.641895835477564e-19, 5.641895835477563e-09},
	{100000000.0, 0.1, 5.6418958354775636e-18, 5.641895835477563e-09},
	{100000000.0, 0.31622776601683794, 1.7841241161527714e-17, 5.641895835477563e-09},
	{100000000.0, 0.6309573444801932, 3.5597956141867846e-17, 5.641895835477563e-09},
	{100000000.0, 1.0, 5.641895835477564e-17, 5.641895835477562e-09},
	{100000000.0, 1.5848931924611136, 8.941802302223095e-17, 5.6418958354775614e-09},
	{100000000.0, 2.51188643150958, 1.417180159712649e-16, 5.64189583547756e-09},
	{100000000.0, 3.9810717055349722, 2.2460791876195287e-16, 5.641895835477554e-09},
	{100000000.0, 6.309573444801933, 3.559795614186771e-16, 5.641895835477541e-09},
	{100000000.0, 10.0, 5.641895835477507e-16, 5.641895835477507e-09},
	{100000000.0, 100.0, 5.6418958354719214e-15, 5.641895835471921e-09},
	{100000000.0, 10000.0, 5.641895779058606e-13, 5.641895779058605e-09},
	{100000000.0, 100000000.0, 2.8209479177387815e-09, 2.8209479177387815e-09},
}

// Random points over the full evaluation window, both half-planes.
var refPlane = []refPoint{
	{-6.23161236383874, -1.16762971848682, -0.017008316750738835, -0.08843177647799141},
	{-4.373326352643045, 5.116795493345079, 0.06417216380552389, -0.05366025541229101},
	{6.67052720611099, -0.8733405544916097, -0.01125976921225358, 0.0840363265730908},
	{2.38798563191233, 5.294257055102601, 0.08809680208139822, 0.03861885103212464},
	{-6.80538450599481, -0.9677512856481097, -0.011931879350462407, -0.08207370801184273},
	{-3.6355949691304987, -1.587118536770504, -0.061529624782670746, -0.13151575350074607},
	{3.9129677328941037, 4.250742222808045, 0.07268736460632338, 0.06495101460995117},
	{-6.112964721945323, 3.038013510393391, 0.037675428350071774, -0.0741577411842227},
	{-4.767763115144499, 1.456281993149014, 0.034978169976311334, -0.10967388533966237},
	{-7.328632865729266, 1.3811930600523687, 0.014387377070624471, -0.07493147590241293},
	{2.0197224688030166, 4.137577047961276, 0.10941014755939701, 0.051080479475119026},
	{4.043020823831392, 0.24436543341550565, 0.009318236544217432, 0.14365371923880935},
	{2.0450259558363557, 4.753094549839708, 0.09941499935541358, 0.04128042651394531},
	{-3.0648145480334827, 2.7408708450662367, 0.09456070172156168, -0.09964556619551751},
	{1.1041072669579082, 0.5452442464467022, 0.3154842650714561, 0.33396145096688695},
	{5.092930176449564, -0.8560869442646324, -0.019187510034601504, 0.10961436677194032},
	{2.1807913570213815, 0.28877000553508325, 0.05658037553940032, 0.2838492173401749},
	{-5.408589661848291, -0.33343103567193055, -0.0067632896401139415, -0.10575559314277179},
	{-2.3911270971578444, 4.897671444716719, 0.09261281792162723, -0.04377756899751645},
	{-7.35583302275869, 4.636644240028854, 0.03502810532990567, -0.05483227835515173},
	{-2.67926290160474, -1.3882360622708485, -0.09281757087941857, -0.17532881049027457},
	{-4.448404285947147, -0.5124086643317554, -0.01563244657318375, -0.1283473846247339},
	{5.421512026168146, 4.075734701867016, 0.050825154662794324, 0.06613774440468642},
	{-0.5297129321206322, -0.5421337372868469, 1.1919858046167209, -1.3294665563631547},
	{1.7652053476446836, 4.096839926153937, 0.11497720618924685, 0.047264752212608285},
	{-1.6123858309347128, 2.477761630681263, 0.16024618900096815, -0.09404577455311058},
	{-0.7579048724275514, 5.818630756361588, 0.09409872055770328, -0.011923713465263833},
	{1.5300575220963841, -1.0721143805389435, -0.8080506152772016, 0.1373380551680859},
	{-4.276073412216096, 3.4845345347760013, 0.06607311811478417, -0.07843397208718843},
	{0.8421037271351102, 0.2217161594127226, 0.4610159797616452, 0.4524081053084011},
	{-2.3880865652593535, -0.5744276400800443, -0.08130239076491015, -0.24126834226742175},
	{-3.1752233461034676, 2.094695441878163, 0.08674675468900299, -0.12233948549902982},
	{-5.783769991988666, -0.9162511035942886, -0.01576070812911398, -0.09645606720649923},
	{-5.439045951707696, 0.23155312695479613, 0.004651868279358446, -0.10537065285840524},
	{1.904181079739117, -1.620819858002431, 0.5732347557768719, 0.0782345988259649},
	{-4.742736482016407, 5.410728895180614, 0.05936698877330139, -0.05104814297831288},
	{7.418690117664851, 0.31585359772384236, 0.0033239335255580756, 0.07661476027018746},
	{-3.5283002702277093, -0.4585964244983203, -0.023440186500045142, -0.16373997593102066},
	{6.625543026592742, 2.0611459735942326, 0.02484449524462217, 0.07816247155599229},
	{6.924733201802559, 0.012786985995885347, 0.0001554190803330793, 0.08235187861081106},
	{3.4216779080912607, -1.6788356036176424, -0.07043528738772724, 0.13323514846377202},
	{0.8647789286681933, -1.6010011073173966, -11.70503189940392, 4.585165530578993},
	{-3.389362223431429, 0.15331829810642872, 0.00882505384345007, -0.17448085008161376},
	{0.5510739116650507, 3.3356937574728605, 0.15878363196514467, 0.02431205856226798},
	{3.454894829060229, 4.486415441392057, 0.07947244648233434, 0.05935390189127916},
	{0.947220158674825, 2.0688533455500275, 0.21702479711289469, 0.08509597387034448},
	{6.642247172619013, 5.445089224603003, 0.04203476606171922, 0.05058280743756791},
	{-3.443685535117588, 5.283043021369424, 0.07509011764096248, -0.047756285447492164},
	{-2.079562795644568, 3.6395644302961054, 0.11657138854990597, -0.06312719282083903},
	{4.723803549724372, 4.134458845374428, 0.06011983350515835, 0.06696017182926661},
	{6.3334427293151245, 3.8449907281555085, 0.04021534118872608, 0.06502716222800432},
	{2.6318355794120274, 4.314320983719384, 0.09535545275462617, 0.056015488324470446},
	{-4.564314479500026, 3.8365159877662345, 0.06201110846830331, -0.07171348648497186},
	{-4.399458114398959, 5.4352293330406045, 0.06306317825985681, -0.050021835794033055},
	{-1.9648212303200632, 1.505598214600053, 0.15364376080191472, -0.1699761519076349},
	{-4.045588909256805, 1.4232516843428595, 0.04701234148463831, -0.1259137206808662},
	{-5.619472372112819, 0.5813962929299594, 0.010794221064315244, -0.10089469720282922},
	{-4.654419297319327, -1.2359756279694576, -0.03201882618524474, -0.11506654737072197},
	{6.8954257763542275, 1.9632246966789741, 0.02213774792009238, 0.07620464404026864},
	{-3.148454466131433, 4.360694563346457, 0.08550058204941992, -0.05968332663692419},
	{-4.440595400829006, 4.16155607524958, 0.0643272128308998, -0.06680949526943075},
	{5.487398917370366, 1.3851768520554677, 0.025525207758701682, 0.09782634690151791},
	{-6.275299596377511, -1.0778314063267314, -0.015566342608345038, -0.08831129405186439},
	{7.29958570948764, 3.7036523497261165, 0.03170277627417857, 0.06154155940343434},
	{3.353208728803712, 5.424103356743637, 0.07531723139072503, 0.04545547615852273},
	{-6.390512291863621, 0.7458678625848931, 0.01055045991471414, -0.08812828211267222},
	{4.1215403774137895, 4.752442903907857, 0.06832986806481153, 0.05779297617172721},
	{-0.13582301246490136, 5.362943314162453, 0.10339937056623547, -0.002534745020720001},
	{0.9918209823611805, 4.578757928354874, 0.11558404816589218, 0.024002052729597816},
	{-5.730202491035857, 1.391137550984246, 0.023534027178598853, -0.0940395575718981},
	{0.8397557284988162, -1.0005848106092365, -0.629490634599817, 2.8613466235167815},
	{1.1529609451673606, 2.398026915363923, 0.1865705029194235, 0.07955850999492181},
	{1.103479459000476, 1.9242302784278926, 0.21636264617782078, 0.10508276662336499},
	{3.134742036924975, 3.2961704492983683, 0.09164767094612433, 0.08309186445792308},
	{2.659226945668471, 2.4502694803204825, 0.10996253416940617, 0.1105874534066106},
	{-3.318086626302404, -0.3269808998132453, -0.019570199039024436, -0.17684968369024812},
	{5.947682478610324, 4.92697111525055, 0.04713150804028556, 0.05594463335087255},
	{-6.6274258603724565, 4.655973545214197, 0.04055565503823743, -0.05684602046924043},
	{-0.3133928358500784, 0.9085197526967053, 0.43687340621556586, -0.09228973585637208},
	{1.5952340677228323, -1.7776602493014502, 2.8463683609808754, -1.9845817617817578},
	{6.254747090873036, 0.30216865172391594, 0.0045248725006765455, 0.09117414284311322},
	{7.226043939793814, 4.122349810210117, 0.034100263807304035, 0.05890427012376124},
	{0.49793793486175364, 3.728447485684259, 0.14417442507863332, 0.018083012865295543},
	{0.6239541191819091, -0.12054198631969704, 0.7333425009021883, 0.6619605589890867},
	{-5.348312758483651, 2.874706658347871, 0.045276602811555676, -0.08191557328225291},
	{2.4264162722527614, 5.373704998675768, 0.0867783025148314, 0.03811265474597613},
	{3.5195772281875604, 5.841834356009497, 0.07088246606153167, 0.0418151009291937},
	{3.440727455135076, 3.2629490649286774, 0.08376388052506584, 0.08448926358317983},
	{4.2051021309265275, -0.13524385311979636, -0.004740791303339725, 0.13817232435963928},
	{2.549477715177786, 0.04367098639120037, 0.006846256233819696, 0.24499220781087},
	{5.963538551194518, 3.5211486155444964, 0.04228012320886412, 0.07010062647906663},
	{3.422797031437031, -0.5219833481343554, -0.028385302836761966, 0.16788655088382876},
	{4.647918900349562, 4.2920810281434, 0.06135136141233052, 0.0647949032007447},
	{-1.1926038951010618, -1.01314811661965, -1.274448632560756, -1.1140026738868392},
	{-0.8426635809878045, 3.0743729559282045, 0.1649800140268117, -0.041532178374462186},
	{7.216745673405739, 5.676309741935688, 0.03831869225149047, 0.04814013739172071},
	{0.7614504251735221, 4.534196167767247, 0.11859808206948867, 0.01906683234452119},
	{-4.704644723501998, 0.8709502226177592, 0.02296415836909609, -0.11825245316053987},
	{-6.879620690197076, 1.0666485626776716, 0.012808078085019116, -0.08085153492954444},
	{0.2535957993148763, 3.619414704781769, 0.14988148470183993, 0.00982297786992448},
	{-2.2897494067407953, 2.577778339085568, 0.125486189257233, -0.10277905457238798},
	{7.10456753414707, -0.6433714944178166, -0.00735156620456126, 0.07953660019380729},
	{-5.412504644805557, -0.3671202766539998, -0.007428475572169284, -0.10558396844148023},
	{-0.09022486236383909, 3.5180489598416544, 0.15446568841059824, -0.00369199771663527},
	{-7.482188374820435, 0.9126770487430933, 0.00930810385235781, -0.07492917507064961},
	{3.0694126988782804, -0.7521588703790445, -0.05009639899088449, 0.18012544865095198},
	{3.8892701578894107, -0.09529821524799376, -0.003982109576616466, 0.15032905326098062},
	{4.808243849052222, 5.402999238990779, 0.058680781734951455, 0.05123778969650687},
	{-5.752622595920773, 5.489056830068069, 0.04939875933638072, -0.05095768683346545},
	{-6.229340361953444, 2.768444321992159, 0.0344838519868531, -0.07589275490080646},
	{3.8366471972780287, 5.614050859803863, 0.06867727985802989, 0.04594619034058378},
	{-5.584999174820682, 2.789245274448688, 0.041551973000885714, -0.0810284447930332},
	{3.836626528506579, -0.604856475981951, -0.025231660874602456, 0.14815645927382903},
	{-1.302650832161505, -1.3891581538649844, -2.4709077735272458, 0.9909487411732232},
	{4.013053468833836, -0.1557118539711142, -0.006054780809891512, 0.1451791259640167},
	{4.376103856244296, -0.6874410531923978, -0.02143700416460845, 0.12890888025418992},
	{5.327821558666163, 3.0210725287324776, 0.046688835557625555, 0.08011470699695049},
	{2.4392241590840724, 4.306652776931955, 0.09902068063341297, 0.05393258752875948},
	{-1.3849691554201646, -1.7339945771753043, 0.3342832655083685, 5.779521320265442},
	{3.119816080665827, 5.4644180914557365, 0.07781559816610584, 0.0433476052829153},
}

// Hand-picked points: origin, rectangle corners, sign folds, and the
// near-axis tail.
var refNamed = []refPoint{
	{0.0, 0.0, 1.0, 0.0},
	{5.33, 4.29, 0.05248287405549013, 0.06381704053429083},
	{-5.33, 4.29, 0.05248287405549013, -0.06381704053429083},
	{5.33, -1.5, -0.028907967331586747, 0.09922656171730189},
	{-5.33, -1.5, -0.028907967331586747, -0.09922656171730189},
	{1.0, 1.0, 0.3047442052569126, 0.20821893820283163},
	{2.0, -1.0, -0.2053255806465875, 0.1468554850301674},
	{0.0, 7.0, 0.07980005432915294, 0.0},
	{7.0, 0.001, 1.1885945552633884e-05, 0.08144750631089037},
	{1e-08, 1e-08, 0.9999999887162083, 1.1283791470955128e-08},
}
